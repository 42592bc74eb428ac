package colorspace

import "github.com/aykutyamanj/pdfcolor/common"

// log returns the package-wide logger. Indirected through a function (as
// opposed to referencing common.Log directly everywhere) only so call
// sites read the same either way common.Log is reassigned by SetLogger.
func log() common.Logger {
	return common.Log
}
