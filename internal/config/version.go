package config

// Version is the generator version embedded in the generated-with comment
// when IncludeVersion is set.
const Version = "0.1.0"
