package validator_test

import (
	"encoding/json"
	"math"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidator/pkg/validator"
)

func TestFieldToJSON(t *testing.T) {
	t.Parallel()

	t.Run("plain document", func(t *testing.T) {
		f := validator.NewField("x", validator.MinLength(2), validator.Required())
		f.Change("abc")

		want := map[string]any{
			"type":         "Validator",
			"defaultValue": "x",
			"currentValue": "abc",
			"options": []any{
				map[string]any{"type": "minLength", "length": float64(2)},
				map[string]any{"type": "required"},
			},
		}
		if diff := cmp.Diff(want, f.ToJSON()); diff != "" {
			t.Errorf("ToJSON() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty rule list", func(t *testing.T) {
		f := validator.NewField("")
		assert.Equal(t, []any{}, f.ToJSON()["options"])
	})

	t.Run("password and pattern parameters", func(t *testing.T) {
		f := validator.NewField("",
			validator.Password(8, validator.PasswordSymbols(false)),
			validator.Password(1, validator.PasswordMaxLength(64)),
			validator.Pattern(regexp.MustCompile(`^\d+$`)),
			validator.Pattern(nil),
		)
		want := []any{
			map[string]any{"type": "password", "minLength": float64(8), "bothCases": true, "numbers": true, "symbols": false},
			map[string]any{"type": "password", "minLength": float64(1), "maxLength": float64(64), "bothCases": true, "numbers": true, "symbols": true},
			map[string]any{"type": "pattern", "regexp": `^\d+$`},
			map[string]any{"type": "pattern"},
		}
		if diff := cmp.Diff(want, f.ToJSON()["options"]); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("marshal matches ToJSON", func(t *testing.T) {
		f := validator.NewField("a", validator.Email())
		data, err := json.Marshal(f)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, f.ToJSON(), got)
	})
}

func TestParseFieldRoundTrip(t *testing.T) {
	t.Parallel()

	fields := map[string]*validator.Field{
		"bare":     validator.NewField("plain"),
		"optional": validator.NewField("", validator.MinLength(5)),
		"short":    validator.NewField("", validator.MinLength(5), validator.MaxLength(10)),
		"email":    validator.NewField("", validator.Required(), validator.Email()),
		"password": validator.NewField("", validator.Password(8, validator.PasswordMaxLength(16), validator.PasswordNumbers(false))),
		"color":    validator.NewField("#fff", validator.HexColor()),
		"site":     validator.NewField("", validator.URL()),
		"digits":   validator.NewField("", validator.Pattern(regexp.MustCompile(`^\d+$`))),
	}
	values := []string{"", "  ", "ab", "user@example.com", "abcdefgh", "Abcdefgh!", "#ff", "example.com", "12345", "a very long value indeed"}

	for name, f := range fields {
		t.Run(name, func(t *testing.T) {
			for _, v := range values {
				f := validator.NewField(f.DefaultValue(), f.Rules()...)
				f.Change(v)

				parsed, err := validator.ParseField(f.ToJSON())
				require.NoError(t, err)
				assert.Equal(t, f.DefaultValue(), parsed.DefaultValue())
				assert.Equal(t, f.CurrentValue(), parsed.CurrentValue())
				assert.Equal(t, f.Errors(), parsed.Errors(), v)
				if diff := cmp.Diff(f.ToJSON(), parsed.ToJSON()); diff != "" {
					t.Errorf("document changed after round trip (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParseField(t *testing.T) {
	t.Parallel()

	t.Run("accepts JSON text", func(t *testing.T) {
		doc := `{"type":"Validator","defaultValue":"d","currentValue":"ab","options":[{"type":"minLength","length":5}]}`

		for _, input := range []any{doc, []byte(doc), json.RawMessage(doc)} {
			f, err := validator.ParseField(input)
			require.NoError(t, err)
			assert.Equal(t, "d", f.DefaultValue())
			assert.Equal(t, "ab", f.CurrentValue())
			require.NotNil(t, f.Errors().MinLength)
			assert.Equal(t, validator.LengthViolation{CurrentLength: 2, AllowedLength: 5}, *f.Errors().MinLength)
		}
	})

	t.Run("accepts a field", func(t *testing.T) {
		f := validator.NewField("d", validator.Required())
		f.Change("v")

		clone, err := validator.ParseField(f)
		require.NoError(t, err)
		assert.NotSame(t, f, clone)
		assert.Equal(t, "v", clone.CurrentValue())
		assert.Equal(t, f.Rules(), clone.Rules())
	})

	t.Run("rejects other documents", func(t *testing.T) {
		inputs := []any{
			nil,
			"not json",
			"[]",
			"null",
			`{}`,
			`{"type":"ValidatorForm"}`,
			`{"type":"Validator","defaultValue":5}`,
			map[string]any{"type": "validator"},
		}
		for _, input := range inputs {
			_, err := validator.ParseField(input)
			assert.ErrorIs(t, err, validator.ErrInvalidPayload, "%v", input)
		}
	})

	t.Run("missing current value restores the default", func(t *testing.T) {
		f, err := validator.ParseField(`{"type":"Validator","defaultValue":"d"}`)
		require.NoError(t, err)
		assert.Equal(t, "d", f.CurrentValue())
		assert.Empty(t, f.Rules())
	})

	t.Run("document from a browser peer", func(t *testing.T) {
		doc := `{"currentValue":"ab","defaultValue":"","options":[{"length":5,"type":"minLength"},{"type":"pattern","regexp":{}}],"type":"Validator"}`
		f, err := validator.ParseField(doc)
		require.NoError(t, err)

		rules := f.Rules()
		require.Len(t, rules, 2)
		assert.Equal(t, validator.PatternRule{}, rules[1])
		assert.Equal(t, []validator.Kind{validator.KindMinLength}, f.Errors().Kinds())
	})

	t.Run("fractional bounds keep their comparison results", func(t *testing.T) {
		f, err := validator.ParseField(`{"type":"Validator","defaultValue":"","currentValue":"ab","options":[{"type":"minLength","length":2.5},{"type":"maxLength","length":1.5}]}`)
		require.NoError(t, err)
		assert.Equal(t, []validator.Rule{validator.MinLengthRule{Length: 3}, validator.MaxLengthRule{Length: 1}}, f.Rules())

		errs := f.Errors()
		require.NotNil(t, errs.MinLength)
		require.NotNil(t, errs.MaxLength)
		assert.Equal(t, 3, errs.MinLength.AllowedLength)
		assert.Equal(t, 1, errs.MaxLength.AllowedLength)
	})

	t.Run("out of range bounds saturate", func(t *testing.T) {
		doc := `{"type":"Validator","defaultValue":"","currentValue":"abc","options":[{"type":"minLength","length":1e20},{"type":"maxLength","length":-1e20}]}`
		f, err := validator.ParseField(doc)
		require.NoError(t, err)
		assert.Equal(t, []validator.Rule{
			validator.MinLengthRule{Length: math.MaxInt},
			validator.MaxLengthRule{Length: math.MinInt},
		}, f.Rules())
		assert.Equal(t, []validator.Kind{validator.KindMinLength, validator.KindMaxLength}, f.Errors().Kinds())

		clone, err := validator.ParseField(f.ToJSON())
		require.NoError(t, err)
		assert.Equal(t, f.Rules(), clone.Rules())

		f, err = validator.ParseField(`{"type":"Validator","defaultValue":"","currentValue":"abc","options":[{"type":"minLength","length":-1e20},{"type":"maxLength","length":1e20}]}`)
		require.NoError(t, err)
		assert.True(t, f.Valid())
	})

	t.Run("stray keys do not disable a rule", func(t *testing.T) {
		doc := `{"type":"Validator","defaultValue":"","currentValue":"   ","options":[{"type":"required","length":"x"},{"type":"email","regexp":5}]}`
		f, err := validator.ParseField(doc)
		require.NoError(t, err)
		assert.Equal(t, []validator.Rule{validator.RequiredRule{}, validator.EmailRule{}}, f.Rules())
		assert.True(t, f.Errors().Required)
		assert.False(t, f.Valid())
	})

	t.Run("mistyped password options fall back to defaults", func(t *testing.T) {
		doc := `{"type":"Validator","defaultValue":"","currentValue":"x","options":[{"type":"password","minLength":"8","maxLength":"x","bothCases":"no","numbers":false,"length":[]}]}`
		f, err := validator.ParseField(doc)
		require.NoError(t, err)
		assert.Equal(t, []validator.Rule{validator.PasswordRule{BothCases: true, Symbols: true}}, f.Rules())
	})

	t.Run("password defaults apply to missing options", func(t *testing.T) {
		f, err := validator.ParseField(`{"type":"Validator","defaultValue":"","currentValue":"x","options":[{"type":"password","minLength":8,"maxLength":null}]}`)
		require.NoError(t, err)
		assert.Equal(t, []validator.Rule{validator.PasswordRule{MinLength: 8, BothCases: true, Numbers: true, Symbols: true}}, f.Rules())
	})

	t.Run("unknown and malformed rules are kept but skipped", func(t *testing.T) {
		doc := `{"type":"Validator","defaultValue":"","currentValue":"abc","options":[null,5,"x",{"type":"custom","limit":1},{"type":"maxLength"},{"type":"minLength","length":"9"},{"type":"required"}]}`
		f, err := validator.ParseField(doc)
		require.NoError(t, err)
		assert.True(t, f.Valid())

		rules := f.Rules()
		require.Len(t, rules, 4)
		assert.Equal(t, validator.Kind("custom"), rules[0].Kind())
		assert.Equal(t, validator.KindMaxLength, rules[1].Kind())
		assert.Equal(t, validator.KindMinLength, rules[2].Kind())
		assert.Equal(t, validator.RequiredRule{}, rules[3])

		want := []any{
			map[string]any{"type": "custom", "limit": float64(1)},
			map[string]any{"type": "maxLength"},
			map[string]any{"type": "minLength", "length": "9"},
			map[string]any{"type": "required"},
		}
		if diff := cmp.Diff(want, f.ToJSON()["options"]); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("uncompilable pattern is skipped", func(t *testing.T) {
		f, err := validator.ParseField(`{"type":"Validator","defaultValue":"","currentValue":"abc","options":[{"type":"pattern","regexp":"(unclosed"}]}`)
		require.NoError(t, err)
		assert.Equal(t, []validator.Rule{validator.PatternRule{}}, f.Rules())
		assert.True(t, f.Valid())
	})

	t.Run("embedded in caller structs", func(t *testing.T) {
		var payload struct {
			Email *validator.Field `json:"email"`
		}
		err := json.Unmarshal([]byte(`{"email":{"type":"Validator","defaultValue":"","currentValue":"a@b.co","options":[{"type":"email"}]}}`), &payload)
		require.NoError(t, err)
		require.NotNil(t, payload.Email)
		assert.True(t, payload.Email.Valid())

		err = json.Unmarshal([]byte(`{"email":{"type":"Other"}}`), &payload)
		assert.ErrorIs(t, err, validator.ErrInvalidPayload)
	})
}

func TestParseForm(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		form, _ := newSignupForm()
		require.NoError(t, form.Change("email", "nope"))
		require.NoError(t, form.Change("website", "example.com"))

		doc := form.ToJSON()
		assert.Equal(t, "ValidatorForm", doc["type"])

		parsed, err := validator.ParseForm(doc)
		require.NoError(t, err)
		assert.Equal(t, form.Names(), parsed.Names())
		assert.Equal(t, form.Errors(), parsed.Errors())
		assert.Equal(t, form.Valid(), parsed.Valid())
		if diff := cmp.Diff(doc, parsed.ToJSON()); diff != "" {
			t.Errorf("document changed after round trip (-want +got):\n%s", diff)
		}
	})

	t.Run("from JSON text", func(t *testing.T) {
		form, _ := newSignupForm()
		data, err := json.Marshal(form)
		require.NoError(t, err)

		parsed, err := validator.ParseForm(string(data))
		require.NoError(t, err)
		assert.Equal(t, form.Names(), parsed.Names())
	})

	t.Run("missing fields is an empty form", func(t *testing.T) {
		for _, doc := range []string{`{"type":"ValidatorForm"}`, `{"type":"ValidatorForm","fields":null}`} {
			form, err := validator.ParseForm(doc)
			require.NoError(t, err)
			assert.Empty(t, form.Names())
			assert.True(t, form.Valid())
			assert.Empty(t, form.Errors())
		}
	})

	t.Run("rejects other documents", func(t *testing.T) {
		for _, input := range []any{nil, "{", `{"type":"Validator"}`, map[string]any{"fields": map[string]any{}}} {
			_, err := validator.ParseForm(input)
			assert.ErrorIs(t, err, validator.ErrInvalidPayload, "%v", input)
		}
	})

	t.Run("rejects invalid nested fields", func(t *testing.T) {
		_, err := validator.ParseForm(`{"type":"ValidatorForm","fields":{"a":{"type":"nope"}}}`)
		require.ErrorIs(t, err, validator.ErrInvalidPayload)
		assert.Contains(t, err.Error(), `field "a"`)
	})

	t.Run("embedded in caller structs", func(t *testing.T) {
		var state struct {
			Form validator.Form `json:"form"`
		}
		err := json.Unmarshal([]byte(`{"form":{"type":"ValidatorForm","fields":{"color":{"type":"Validator","defaultValue":"","currentValue":"#ff","options":[{"type":"hexColor"}]}}}}`), &state)
		require.NoError(t, err)
		assert.False(t, state.Form.Valid())
		assert.True(t, state.Form.Errors()["color"].HexColor)
	})
}
