package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedTextResolvePlain(t *testing.T) {
	v := PlainText("Northern Lights")

	assert.Equal(t, "Northern Lights", v.Resolve(LocaleEnglish))
	assert.Equal(t, "Northern Lights", v.Resolve(LocaleTamil))
	assert.Equal(t, "Northern Lights", v.Resolve(LocaleCode("fr")))
}

func TestLocalizedTextResolveBothLocales(t *testing.T) {
	v := LocalizedString(map[LocaleCode]string{
		LocaleEnglish: "Harbour at dusk",
		LocaleTamil:   "அந்தி நேரத் துறைமுகம்",
	})

	assert.Equal(t, "Harbour at dusk", v.Resolve(LocaleEnglish))
	assert.Equal(t, "அந்தி நேரத் துறைமுகம்", v.Resolve(LocaleTamil))
}

func TestLocalizedTextFallbackToEnglish(t *testing.T) {
	missing := LocalizedString(map[LocaleCode]string{
		LocaleEnglish: "Harbour at dusk",
	})
	empty := LocalizedString(map[LocaleCode]string{
		LocaleEnglish: "Harbour at dusk",
		LocaleTamil:   "",
	})

	assert.Equal(t, "Harbour at dusk", missing.Resolve(LocaleTamil))
	assert.Equal(t, "Harbour at dusk", empty.Resolve(LocaleTamil))
}

func TestLocalizedTextAllEmpty(t *testing.T) {
	v := LocalizedString(map[LocaleCode]string{
		LocaleEnglish: "",
		LocaleTamil:   "",
	})

	assert.Equal(t, "", v.Resolve(LocaleEnglish))
	assert.Equal(t, "", v.Resolve(LocaleTamil))
	assert.True(t, v.IsZero())
}

func TestLocalizedTextZeroValue(t *testing.T) {
	var v LocalizedText

	assert.Equal(t, "", v.Resolve(LocaleEnglish))
	assert.True(t, v.IsZero())
}

// A plain string that merely looks like it could be a locale map must stay
// plain: the variant tag is carried by the type, not guessed from content.
func TestLocalizedTextTagIsTypeLevel(t *testing.T) {
	v := PlainText(`{"en":"not a map"}`)

	assert.Equal(t, `{"en":"not a map"}`, v.Resolve(LocaleTamil))
}

func TestLocalizedTextJSONRoundTrip(t *testing.T) {
	plain := PlainText("Iceland")
	localized := LocalizedString(map[LocaleCode]string{LocaleEnglish: "Iceland"})

	plainJSON, err := json.Marshal(plain)
	require.NoError(t, err)
	assert.JSONEq(t, `"Iceland"`, string(plainJSON))

	localizedJSON, err := json.Marshal(localized)
	require.NoError(t, err)
	assert.JSONEq(t, `{"en":"Iceland"}`, string(localizedJSON))

	var decodedPlain LocalizedText
	require.NoError(t, json.Unmarshal(plainJSON, &decodedPlain))
	assert.Nil(t, decodedPlain.Localized)
	assert.Equal(t, "Iceland", decodedPlain.Plain)

	var decodedLocalized LocalizedText
	require.NoError(t, json.Unmarshal(localizedJSON, &decodedLocalized))
	assert.NotNil(t, decodedLocalized.Localized)
	assert.Equal(t, "Iceland", decodedLocalized.Resolve(LocaleEnglish))
}

func TestLocalizedTextScan(t *testing.T) {
	var v LocalizedText
	require.NoError(t, v.Scan([]byte(`{"en":"Fjords","ta":""}`)))
	assert.Equal(t, "Fjords", v.Resolve(LocaleTamil))

	var nilValue LocalizedText
	require.NoError(t, nilValue.Scan(nil))
	assert.True(t, nilValue.IsZero())
}

func TestLocalizedListResolve(t *testing.T) {
	plain := PlainList([]string{"iceland", "winter"})
	assert.Equal(t, []string{"iceland", "winter"}, plain.Resolve(LocaleTamil))

	localized := LocalizedStrings(map[LocaleCode][]string{
		LocaleEnglish: {"iceland", "winter"},
	})
	assert.Equal(t, []string{"iceland", "winter"}, localized.Resolve(LocaleTamil))

	empty := LocalizedStrings(map[LocaleCode][]string{
		LocaleEnglish: {},
	})
	assert.Empty(t, empty.Resolve(LocaleEnglish))
	assert.NotNil(t, empty.Resolve(LocaleEnglish))
}

func TestIsSupportedLocale(t *testing.T) {
	assert.True(t, IsSupportedLocale(LocaleEnglish))
	assert.True(t, IsSupportedLocale(LocaleTamil))
	assert.False(t, IsSupportedLocale(LocaleCode("fr")))
}
