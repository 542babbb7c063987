package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_mjcore/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func Test_StructFields(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{
		"hand":    "123m",
		"riichi":  true,
		"honba":   2,
		"context": map[string]any{"win_tile": "5s"},
	})
	require.NoError(t, err)

	assert.True(t, utils.Has(s, "hand"))
	assert.False(t, utils.Has(s, "visible"))
	assert.Equal(t, "123m", utils.String(s, "hand"))
	assert.Equal(t, "", utils.String(s, "visible"))
	assert.True(t, utils.Bool(s, "riichi"))
	assert.Equal(t, 2, utils.Int(s, "honba"))
	assert.Equal(t, "5s", utils.String(utils.Struct(s, "context"), "win_tile"))
	assert.Nil(t, utils.Struct(s, "missing"))
	assert.Equal(t, "", utils.String(nil, "hand"))
}

func Test_List(t *testing.T) {
	got := utils.List([]int{1, 2}, func(v int) any { return v * 10 })
	assert.Equal(t, []any{10, 20}, got)

	_, err := structpb.NewList(got)
	assert.NoError(t, err)
}

func Test_Formatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "cache miss",
		Data:    logrus.Fields{"op": "evaluate", "err": errors.New("timeout")},
	}
	out, err := (&utils.Formatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 08:30:00 [warning] cache miss err=timeout op=evaluate\n", string(out))
}
