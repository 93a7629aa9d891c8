package postgres

import (
	"database/sql/driver"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bad conn", driver.ErrBadConn, true},
		{"wrapped bad conn", errors.Wrap(driver.ErrBadConn, "begin"), true},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
		{"failed to connect", errors.New("failed to connect to `host=db`"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"constraint violation", errors.New(`duplicate key value violates unique constraint "customers_pkey"`), false},
		{"plain statement error", errors.New("syntax error at or near \"SELEC\""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConnectivityError(tt.err))
		})
	}
}
