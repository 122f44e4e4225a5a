package analyzer

// AnalyzerError is a custom error type for analyzer errors
type AnalyzerError string

// Error implements the error interface
func (e AnalyzerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidArgument AnalyzerError = "analyzer requires a game"
)
