package model

import (
	"time"

	"gorm.io/datatypes"
)

// ClientOrnaments — сохранённая коллекция орнаментов приглашения. Одна строка на клиента,
// Data хранит документ {"ornaments":[...]} целиком.
type ClientOrnaments struct {
	ClientID string         `gorm:"primaryKey;type:uuid"`
	Client   *Client        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Data     datatypes.JSON `gorm:"not null"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TemplateOrnaments — то же для шаблона каталога (отдельное пространство имён).
type TemplateOrnaments struct {
	TemplateID string         `gorm:"primaryKey;type:uuid"`
	Template   *Template      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Data       datatypes.JSON `gorm:"not null"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
