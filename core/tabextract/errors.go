package tabextract

import "errors"

// errWrongInstance is returned when a capability produced a handle of
// an unexpected instance type.
var errWrongInstance = errors.New("capability returned an instance of the wrong type")
