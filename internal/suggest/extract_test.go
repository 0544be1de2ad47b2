package suggest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var data any
	err := json.Unmarshal([]byte(raw), &data)
	assert.NoError(t, err)
	return data
}

func TestExtractOutputText_OutputTextField(t *testing.T) {
	data := decode(t, `{"output_text": "hello from the model"}`)

	assert.Equal(t, "hello from the model", ExtractOutputText(data))
}

func TestExtractOutputText_OutputContentParts(t *testing.T) {
	data := decode(t, `{
		"output": [
			{"content": [
				{"type": "reasoning", "text": "thinking..."},
				{"type": "output_text", "text": "the actual answer"}
			]}
		]
	}`)

	assert.Equal(t, "the actual answer", ExtractOutputText(data))
}

func TestExtractOutputText_FirstElementText(t *testing.T) {
	data := decode(t, `{"output": [{"text": "plain text shape"}]}`)

	assert.Equal(t, "plain text shape", ExtractOutputText(data))
}

func TestExtractOutputText_FallbackFindsFirstLongString(t *testing.T) {
	data := decode(t, `{"weird": {"nested": {"field": "a string long enough to be model output"}}}`)

	assert.Equal(t, "a string long enough to be model output", ExtractOutputText(data))
}

func TestExtractOutputText_NotAnObject(t *testing.T) {
	assert.Equal(t, "", ExtractOutputText("just a string"))
	assert.Equal(t, "", ExtractOutputText(nil))
}

func TestExtractJSONArray_StrictParse(t *testing.T) {
	raw := `[{"type":"GAME","title":"Hades","creator":"Supergiant Games"}]`

	suggestions := ExtractJSONArray(raw)

	assert.Len(t, suggestions, 1)
	assert.Equal(t, "Hades", suggestions[0].Title)
}

func TestExtractJSONArray_EmbeddedInProse(t *testing.T) {
	raw := "Sure! Here are some picks:\n```json\n" +
		`[{"type":"MOVIE","title":"Alien","creator":"Ridley Scott"},` +
		`{"type":"MOVIE","title":"Arrival","creator":"Denis Villeneuve"}]` +
		"\n```\nEnjoy!"

	suggestions := ExtractJSONArray(raw)

	assert.Len(t, suggestions, 2)
	assert.Equal(t, "Arrival", suggestions[1].Title)
}

func TestExtractJSONArray_HarvestsBareObjects(t *testing.T) {
	raw := `1. {"type":"MUSIC","title":"Blue Train","creator":"John Coltrane"}
2. {"type":"MUSIC","title":"A Love Supreme","creator":"John Coltrane"}`

	suggestions := ExtractJSONArray(raw)

	assert.Len(t, suggestions, 2)
	assert.Equal(t, "Blue Train", suggestions[0].Title)
}

func TestExtractJSONArray_NothingUsable(t *testing.T) {
	assert.Nil(t, ExtractJSONArray("I cannot help with that."))
	assert.Nil(t, ExtractJSONArray(""))
}
