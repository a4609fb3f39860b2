package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{"valid", Transaction{UserID: "u", Amount: 149.9}, false},
		{"zero amount", Transaction{UserID: "u"}, false},
		{"at the cap", Transaction{UserID: "u", Amount: MaxTransactionAmount}, false},
		{"missing user", Transaction{Amount: 1}, true},
		{"negative", Transaction{UserID: "u", Amount: -0.01}, true},
		{"nan", Transaction{UserID: "u", Amount: math.NaN()}, true},
		{"inf", Transaction{UserID: "u", Amount: math.Inf(1)}, true},
		{"above the cap", Transaction{UserID: "u", Amount: MaxTransactionAmount * 2}, true},
		{"max float", Transaction{UserID: "u", Amount: math.MaxFloat64}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserProfile_Apply_AverageStaysFiniteAtTheCap(t *testing.T) {
	p := NewUserProfile("u")

	for i := 0; i < 1000; i++ {
		p.Apply(Transaction{UserID: "u", Amount: MaxTransactionAmount, DeviceID: "d", Location: "l"})
	}

	assert.False(t, math.IsInf(p.AvgTransactionAmount, 0))
	assert.InDelta(t, MaxTransactionAmount, p.AvgTransactionAmount, 1)
	assert.Equal(t, uint64(1000), p.TransactionCount)
}
