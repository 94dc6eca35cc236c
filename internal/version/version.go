package version

const Value = "0.9.1"
