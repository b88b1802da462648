package models

// Page is one slice of a paginated listing of upload records.
type Page struct {
	Content          []UploadRecord `json:"content" yaml:"content"`
	Number           int            `json:"number" yaml:"number"` // zero-based
	Size             int            `json:"size" yaml:"size"`
	TotalElements    int64          `json:"totalElements" yaml:"totalElements"`
	TotalPages       int            `json:"totalPages" yaml:"totalPages"`
	NumberOfElements int            `json:"numberOfElements" yaml:"numberOfElements"`
	First            bool           `json:"first" yaml:"first"`
	Last             bool           `json:"last" yaml:"last"`
	Empty            bool           `json:"empty" yaml:"empty"`
}

// NewPage builds the envelope for page number of the given size over total records.
// size must be positive.
func NewPage(content []UploadRecord, number, size int, total int64) Page {
	if content == nil {
		content = []UploadRecord{}
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return Page{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            number == 0,
		Last:             number+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}
