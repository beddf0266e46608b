package models

import (
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"gorm.io/gorm"
)

type Client struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Contact   string    `gorm:"size:100" json:"contact"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewClient struct {
	ID      string `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (input *NewClient) Model() Client {
	return Client{
		ID:      input.ID,
		Name:    input.Name,
		Contact: input.Contact,
		Address: input.Address,
	}
}

func (c Client) Validate(db *gorm.DB) error {
	if c.ID == "" {
		return utils.NewValidationError("client id is required")
	}
	if c.Name == "" {
		return utils.NewValidationError("client name is required")
	}
	return nil
}
