package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	origErr := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		text string
	}{
		{"create dir", CreateDirError("/test/dir", origErr),
			errcode.CreateDirError, "cannot create directory"},
		{"copy file", CopyFileError("/test/dir", origErr),
			errcode.CopyFileError, "cannot copy file"},
		{"read file", ReadFileError("/test/dir", origErr),
			errcode.ReadFileError, "cannot read /test/dir"},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.Equal(t, "/test/dir", gnErr.Vars[0], v.msg)
		assert.ErrorIs(t, gnErr.Err, origErr, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
		// caller is recorded
		assert.Contains(t, gnErr.Err.Error(), "iofs.TestErrors", v.msg)
	}
}
