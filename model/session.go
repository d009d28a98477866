package model

import "time"

type Session struct {
	SessionID      string    `bson:"sessionId" json:"sessionId"`
	UserID         string    `bson:"userId" json:"userId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt      time.Time `bson:"expiresAt" json:"expiresAt"`
	LastActivityAt time.Time `bson:"lastActivityAt" json:"lastActivityAt"`
	DeviceInfo     string    `bson:"deviceInfo" json:"deviceInfo"`
	IPAddress      string    `bson:"ipAddress" json:"ipAddress"`
	IsActive       bool      `bson:"isActive" json:"isActive"`
}
