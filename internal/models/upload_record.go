package models

import "time"

// UploadRecord is the persisted metadata describing one processed file.
// Records are created once per upload and never updated afterwards.
type UploadRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id" yaml:"id"`
	FileName   string    `gorm:"column:file_name;not null" json:"fileName" yaml:"fileName"`
	LineCount  int64     `gorm:"column:line_count" json:"lineCount" yaml:"lineCount"`
	WordCount  int64     `gorm:"column:word_count" json:"wordCount" yaml:"wordCount"`
	UploadedAt time.Time `gorm:"column:uploaded_at;index" json:"uploadedAt" yaml:"uploadedAt"`
}

// TableName keeps the table name stable regardless of the struct name.
func (UploadRecord) TableName() string {
	return "file_metadata"
}
