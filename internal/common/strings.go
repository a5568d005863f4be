package common

// UnknownStr is the String() value for enum values outside their defined range.
const UnknownStr = "unknown"
