package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageQuery struct {
	Query string `form:"query"`
	Page  int    `form:"page" binding:"min=1"`
	Limit int    `form:"limit" binding:"min=1,max=50"`
}

type customerBody struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	ImageURL string `json:"image_url" binding:"required"`
	Internal string `json:"-"`
}

func validateStruct(obj any) error {
	return binding.Validator.ValidateStruct(obj)
}

func bindQuery(t *testing.T, rawQuery string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/customers?"+rawQuery, nil)
	q := pageQuery{Page: 1, Limit: 6}
	return c.ShouldBindQuery(&q)
}

func TestFieldErrors(t *testing.T) {
	SetupValidator()

	t.Run("reports form names of query fields", func(t *testing.T) {
		err := bindQuery(t, "limit=51")
		require.Error(t, err)

		details := FieldErrors(err)
		require.Len(t, details, 1)
		assert.Equal(t, "limit", details[0].Field)
		assert.Equal(t, "Must be at most 50", details[0].Message)
	})

	t.Run("reports every failing field", func(t *testing.T) {
		err := bindQuery(t, "page=0&limit=0")
		require.Error(t, err)

		fields := []string{}
		for _, d := range FieldErrors(err) {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"page", "limit"}, fields)
	})

	t.Run("reports json names of body fields", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("POST", "/customers", nil)

		var body customerBody
		err := c.ShouldBindJSON(&body)
		require.Error(t, err)
		assert.Nil(t, FieldErrors(err), "empty body is a decode error, not a validation error")

		err = validateStruct(&customerBody{Email: "nope"})
		details := FieldErrors(err)
		byField := map[string]string{}
		for _, d := range details {
			byField[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", byField["name"])
		assert.Equal(t, "Invalid email format", byField["email"])
		assert.Equal(t, "This field is required", byField["image_url"])
	})

	t.Run("non validation errors yield nil", func(t *testing.T) {
		err := bindQuery(t, "limit=abc")
		require.Error(t, err)
		assert.Nil(t, FieldErrors(err))
	})

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, bindQuery(t, "query=al&page=2&limit=50"))
	})
}

func TestFieldName(t *testing.T) {
	SetupValidator()
	err := validateStruct(&struct {
		Plain int `binding:"min=1"`
	}{})
	details := FieldErrors(err)
	require.Len(t, details, 1)
	assert.Equal(t, "Plain", details[0].Field)
}

func TestValidatePassword(t *testing.T) {
	SetupValidator()

	type passwordBody struct {
		Password *string `json:"password" binding:"omitempty,min=6,password"`
	}
	pw := func(s string) *string { return &s }

	tests := []struct {
		name     string
		password *string
		valid    bool
	}{
		{"absent", nil, true},
		{"ascii at the limit", pw(strings.Repeat("a", 72)), true},
		{"ascii over the limit", pw(strings.Repeat("a", 73)), false},
		{"multi-byte at the limit", pw(strings.Repeat("é", 36)), true},
		{"multi-byte under the rune count but over the byte count", pw(strings.Repeat("é", 40)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStruct(&passwordBody{Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			details := FieldErrors(err)
			require.Len(t, details, 1)
			assert.Equal(t, "password", details[0].Field)
			assert.Equal(t, "Must be at most 72 bytes", details[0].Message)
		})
	}
}
