package g2h

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecFuncNames(t *testing.T) {
	single := fieldBinding{fieldID: "payment_create_response_status", card: cardSingle}
	assert.Equal(t, "serialize_payment_create_response_status_as_string", serializeFuncName(single))
	assert.Equal(t, "deserialize_payment_create_response_status_from_string", deserializeFuncName(single))

	opt := fieldBinding{fieldID: "payment_create_response_status", card: cardOption}
	assert.Equal(t, "serialize_option_payment_create_response_status_as_string", serializeFuncName(opt))
	assert.Equal(t, "deserialize_option_payment_create_response_status_from_string", deserializeFuncName(opt))

	rep := fieldBinding{fieldID: "payment_create_response_status", card: cardRepeated}
	assert.Equal(t, "serialize_repeated_payment_create_response_status_as_string", serializeFuncName(rep))
	assert.Equal(t, "deserialize_repeated_payment_create_response_status_from_string", deserializeFuncName(rep))
}

func TestRenderEnumCodecs(t *testing.T) {
	bindings := []fieldBinding{
		{fieldID: "req_status", enumTypePath: "Status", enumIdent: "Status", card: cardSingle},
		{fieldID: "req_maybe", enumTypePath: "Status", enumIdent: "Status", card: cardOption},
		{fieldID: "req_history", enumTypePath: "req::Status", enumIdent: "Req_Status", card: cardRepeated},
	}
	out, err := renderEnumCodecs(bindings)
	require.NoError(t, err)

	assert.Contains(t, out, "func serialize_req_status_as_string(v int32) interface{}")
	assert.Contains(t, out, "httpjson.SerializeEnum(v, Status_name)")
	assert.Contains(t, out, `httpjson.DeserializeEnum(data, Status_value, "Status")`)

	assert.Contains(t, out, "func serialize_option_req_maybe_as_string(v *int32) interface{}")
	assert.Contains(t, out, "func deserialize_option_req_maybe_from_string(data []byte) (*int32, error)")

	assert.Contains(t, out, "func serialize_repeated_req_history_as_string(vs []int32) []interface{}")
	assert.Contains(t, out, `httpjson.DeserializeRepeatedEnum(data, Req_Status_value, "req::Status")`)
}

func TestRenderEnumCodecsSkipsForeign(t *testing.T) {
	out, err := renderEnumCodecs([]fieldBinding{
		{fieldID: "holder_foreign", enumTypePath: "Foreign", enumIdent: "", card: cardSingle},
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderEnumCodecsRejectsEmptyFieldID(t *testing.T) {
	_, err := renderEnumCodecs([]fieldBinding{{enumTypePath: "Status", enumIdent: "Status"}})
	require.Error(t, err)
}
