package models

// Message - обращение клиента к провайдеру. После создания не меняется.
type Message struct {
	BaseModel
	ProviderID  uint   `gorm:"not null;index"`
	ClientName  string `gorm:"not null"`
	ClientPhone string `gorm:"not null"`
	ClientEmail string
	MessageText string `gorm:"type:text;not null"`
}
