package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2024, time.January, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(data))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &d))
	assert.Equal(t, NewDate(2024, time.January, 15), d)
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2024-13-40"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240115`), &d))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-15", d.Format("2006-01-02"))

	require.NoError(t, d.Scan("2023-06-01"))
	assert.Equal(t, "2023-06-01", d.Format("2006-01-02"))

	assert.Error(t, d.Scan(42))
}

func TestEmployee_JSONRoundTrip(t *testing.T) {
	e := Employee{
		EmployeeID:  "E001",
		Name:        "John Doe",
		Department:  "Engineering",
		Salary:      50000,
		JoiningDate: NewDate(2024, time.January, 15),
		Skills:      []string{"Python", "SQL"},
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var got Employee
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, e.EmployeeID, got.EmployeeID)
	assert.Equal(t, e.JoiningDate, got.JoiningDate)
	assert.Equal(t, e.Skills, got.Skills)
}
