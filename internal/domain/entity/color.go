package entity

// Color is a display color for a task, expressed as hex values.
type Color struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Border     string `json:"border"`
}
