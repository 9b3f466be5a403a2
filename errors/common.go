package errors

// ErrBind means the listening socket could not be opened. It is fatal at startup.
var ErrBind = New("bind listener failed")

// ErrConfig means the server configuration is unusable.
var ErrConfig = New("invalid server config")
