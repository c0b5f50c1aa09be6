package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet_FoldsAndDedupes(t *testing.T) {
	s := NewSet([]string{"Go", "python", "GO"}, []string{"Python", "Docker"})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"go", "python", "docker"}, s.Items())
}

func TestSet_Contains(t *testing.T) {
	s := NewSet([]string{"Kubernetes"})

	assert.True(t, s.Contains("kubernetes"))
	assert.True(t, s.Contains("KUBERNETES"))
	assert.False(t, s.Contains("k8s"))

	var nilSet *Set
	assert.False(t, nilSet.Contains("go"))
	assert.Equal(t, 0, nilSet.Len())
	assert.Empty(t, nilSet.Items())
}

func TestSet_Add(t *testing.T) {
	s := NewSet()
	assert.True(t, s.Add("SQL"))
	assert.False(t, s.Add("sql"))
	assert.Equal(t, []string{"sql"}, s.Items())
}

func TestSet_Operations(t *testing.T) {
	a := NewSet([]string{"Go", "SQL", "AWS"})
	b := NewSet([]string{"aws", "docker", "go"})

	assert.Equal(t, []string{"go", "aws"}, a.Intersect(b).Items())
	assert.Equal(t, []string{"sql"}, a.Difference(b).Items())
	assert.Equal(t, []string{"go", "sql", "aws", "docker"}, a.Union(b).Items())
}

func TestSet_First(t *testing.T) {
	s := NewSet([]string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "b"}, s.First(2))
	assert.Equal(t, []string{"a", "b", "c"}, s.First(10))
	assert.Empty(t, s.First(0))
	assert.Empty(t, s.First(-1))
}

func TestFold_KeepsWhitespace(t *testing.T) {
	assert.Equal(t, " go", Fold(" Go"))
}
