package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		msg     string
		err     error
		code    gn.ErrorCode
		varsLen int
		wrapped bool
	}{
		{"connection", ConnectionError("localhost", 5432, "db", "user", cause),
			errcode.DBConnectionError, 6, true},
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError, 0, false},
		{"table", TableExistsCheckError("runs", cause),
			errcode.DBTableExistsCheckError, 1, true},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Len(t, gnErr.Vars, v.varsLen, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
		if v.wrapped {
			assert.ErrorIs(t, gnErr.Err, cause, v.msg)
		}
	}
}
