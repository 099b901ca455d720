package apperror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindBody struct {
	Username    string   `json:"username" binding:"required"`
	Ingredients []string `json:"ingredients"`
}

type bindQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0,max=1000"`
}

func bindJSON(t *testing.T, body string) *ValidationError {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req bindBody
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)
	return FromBindError(LocBody, err)
}

func TestFromBindError_Body(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		fields []FieldError
	}{
		{
			name:   "missing required field uses json name",
			body:   `{}`,
			fields: []FieldError{{Loc: "body.username", Msg: "field required"}},
		},
		{
			name:   "empty string counts as missing",
			body:   `{"username":""}`,
			fields: []FieldError{{Loc: "body.username", Msg: "field required"}},
		},
		{
			name:   "wrong type",
			body:   `{"username":"alice","ingredients":"eggs"}`,
			fields: []FieldError{{Loc: "body.ingredients", Msg: "must be of type array"}},
		},
		{
			name:   "syntax error",
			body:   `{"username":`,
			fields: []FieldError{{Loc: "body", Msg: "invalid JSON body"}},
		},
		{
			name:   "empty body",
			body:   ``,
			fields: []FieldError{{Loc: "body", Msg: "invalid JSON body"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.fields, bindJSON(t, tt.body).Fields)
		})
	}
}

func TestFromBindError_Query(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		fields []FieldError
	}{
		{"negative skip", "?skip=-1", []FieldError{{Loc: "query.skip", Msg: "must be greater than or equal to 0"}}},
		{"limit too large", "?limit=5000", []FieldError{{Loc: "query.limit", Msg: "must be less than or equal to 1000"}}},
		{"not a number", "?skip=abc", []FieldError{{Loc: "query", Msg: `value "abc" is not a valid integer`}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)

			var q bindQuery
			err := c.ShouldBindQuery(&q)
			require.Error(t, err)
			assert.Equal(t, tt.fields, FromBindError(LocQuery, err).Fields)
		})
	}
}

func TestFromBindError_QueryDefaults(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	var q bindQuery
	require.NoError(t, c.ShouldBindQuery(&q))
	assert.Equal(t, 0, q.Skip)
	assert.Equal(t, 100, q.Limit)
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		raw     string
		want    uint
		wantErr string
	}{
		{name: "valid id", raw: "42", want: 42},
		{name: "zero parses", raw: "0", want: 0},
		{name: "word", raw: "abc", wantErr: `path.post_id: value "abc" is not a valid integer`},
		{name: "negative", raw: "-1", wantErr: `path.post_id: value "-1" is not a valid integer`},
		{name: "decimal", raw: "1.5", wantErr: `path.post_id: value "1.5" is not a valid integer`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, err := PathID(c, "id", "post_id")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, http.StatusUnprocessableEntity, Status(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
