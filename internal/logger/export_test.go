package logger

var IsIgnorableSyncError = isIgnorableSyncError
