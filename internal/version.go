package internal

// Version is the current application version
const Version = "0.3.1"
