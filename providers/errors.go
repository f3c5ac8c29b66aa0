package providers

import "errors"

// ErrDataGap is returned by an EphemerisProvider when it cannot satisfy a
// requested epoch (outside its loaded coverage window).
var ErrDataGap = errors.New("providers: no data at requested epoch")
