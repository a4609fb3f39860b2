package models

import "time"

// MaxKnownEntries лимит на количество известных устройств и локаций в профиле
const MaxKnownEntries = 5

// UserProfile поведенческий профиль пользователя
type UserProfile struct {
	UserID               string     `json:"user_id"`
	AvgTransactionAmount float64    `json:"avg_transaction_amount"`
	TransactionCount     uint64     `json:"transaction_count"`
	LastTransactionTime  *time.Time `json:"last_transaction_time"`
	KnownDevices         []string   `json:"known_devices"`
	KnownLocations       []string   `json:"known_locations"`
}

// NewUserProfile пустой профиль для пользователя без истории
func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:         userID,
		KnownDevices:   []string{},
		KnownLocations: []string{},
	}
}

func (p *UserProfile) HasDevice(deviceID string) bool {
	return contains(p.KnownDevices, deviceID)
}

func (p *UserProfile) HasLocation(location string) bool {
	return contains(p.KnownLocations, location)
}

// Apply folds a transaction into the profile: running average, counter,
// last-seen time and the bounded device/location lists.
func (p *UserProfile) Apply(tx Transaction) {
	total := p.AvgTransactionAmount * float64(p.TransactionCount)
	p.TransactionCount++
	p.AvgTransactionAmount = (total + tx.Amount) / float64(p.TransactionCount)

	ts := tx.Timestamp
	p.LastTransactionTime = &ts

	p.KnownDevices = appendBounded(p.KnownDevices, tx.DeviceID, MaxKnownEntries)
	p.KnownLocations = appendBounded(p.KnownLocations, tx.Location, MaxKnownEntries)
}

// appendBounded appends an unseen value and evicts the oldest entries past limit.
func appendBounded(list []string, value string, limit int) []string {
	if contains(list, value) {
		return list
	}
	list = append(list, value)
	if len(list) > limit {
		list = append([]string(nil), list[len(list)-limit:]...)
	}
	return list
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
