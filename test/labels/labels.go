package labels

const (
	Unit        = "unit"
	Integration = "integration"
)
