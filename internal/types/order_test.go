package types

import (
	"testing"

	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOrderIntentValidate(t *testing.T) {
	tests := []struct {
		name    string
		intent  OrderIntent
		wantErr bool
		code    errors.ErrorCode
	}{
		{
			name:   "valid buy",
			intent: OrderIntent{Symbol: "AAPL", Side: SideBuy, Qty: 1},
		},
		{
			name:   "valid sell",
			intent: OrderIntent{Symbol: "TSLA", Side: SideSell, Qty: 10},
		},
		{
			name:    "missing symbol",
			intent:  OrderIntent{Side: SideBuy, Qty: 1},
			wantErr: true,
			code:    errors.ErrCodeInvalidIntent,
		},
		{
			name:    "bad side",
			intent:  OrderIntent{Symbol: "AAPL", Side: "hold", Qty: 1},
			wantErr: true,
			code:    errors.ErrCodeInvalidIntent,
		},
		{
			name:    "zero qty",
			intent:  OrderIntent{Symbol: "AAPL", Side: SideBuy, Qty: 0},
			wantErr: true,
			code:    errors.ErrCodeInvalidIntent,
		},
		{
			name:    "negative qty",
			intent:  OrderIntent{Symbol: "AAPL", Side: SideSell, Qty: -3},
			wantErr: true,
			code:    errors.ErrCodeInvalidIntent,
		},
		{
			name:    "symbol outside allow-list",
			intent:  OrderIntent{Symbol: "DOGE", Side: SideBuy, Qty: 1},
			wantErr: true,
			code:    errors.ErrCodeSymbolNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.intent.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.code, errors.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
