package describe_test

import (
	"testing"

	"github.com/jkcclemens/describe"
	"github.com/stretchr/testify/assert"
)

func TestIncludeChainingReturnsSamePolicy(t *testing.T) {
	t.Parallel()
	inc := describe.NewInclude()
	same := inc.Publics(true).EnsureName("x").ExcludeType(describe.Type[int]()).KeepFinals(false)
	assert.Same(t, inc, same)
}

func TestIgnoreNameCancelsEnsureAndExclude(t *testing.T) {
	t.Parallel()
	inc := describe.NewInclude().
		EnsureName("NumberOfFriends").
		ExcludeName("FirstName").
		EnsureField("Height", describe.Type[float32]()).
		IgnoreName("NumberOfFriends").
		IgnoreName("FirstName").
		IgnoreName("Height").
		Publics(true)
	got := describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{FirstName=Joe,LastName=Schmoe,Height=6.083,Age=23.4}", got)
}

func TestIgnoreTypeCancelsEnsureAndExclude(t *testing.T) {
	t.Parallel()
	inc := describe.NewInclude().
		Publics(true).
		ExcludeType(describe.Type[float32]()).
		IgnoreType(describe.Type[float32]())
	got := describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{FirstName=Joe,LastName=Schmoe,Height=6.083,Age=23.4}", got)

	inc = describe.NewInclude().
		EnsureType(describe.Type[bool]()).
		IgnoreType(describe.Type[bool]())
	got = describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{}", got)
}

func TestIgnoreValueCancelsEnsureAndExclude(t *testing.T) {
	t.Parallel()
	inc := describe.NewInclude().
		EnsureValue(true).
		IgnoreValue(true)
	got := describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{}", got)

	inc = describe.NewInclude().
		Publics(true).
		ExcludeValue("Joe").
		IgnoreValue("Joe")
	got = describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{FirstName=Joe,LastName=Schmoe,Height=6.083,Age=23.4}", got)
}

func TestUnmapRestoresOriginalKey(t *testing.T) {
	t.Parallel()
	inc := describe.NewInclude().
		Publics(true).
		Map("FirstName", "given").
		Unmap("FirstName")
	got := describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{FirstName=Joe,LastName=Schmoe,Height=6.083,Age=23.4}", got)
}

func TestAllVisibilitiesTogglesAllFourTiers(t *testing.T) {
	t.Parallel()
	inc := describe.NewInclude().AllVisibilities(true).AllVisibilities(false)
	got := describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{}", got)
}

func TestCustomReplacesValueInPlace(t *testing.T) {
	t.Parallel()
	inc := describe.NewInclude().
		Custom("a", 1).
		Custom("b", 2).
		Custom("a", 3)
	got := describe.New(newJoe(), inc).Generate()
	assert.Equal(t, "Person{a=3,b=2}", got)
}

func TestNilIncludeBehavesLikeEmptyPolicy(t *testing.T) {
	t.Parallel()
	got := describe.New(newJoe(), nil).Generate()
	assert.Equal(t, "Person{}", got)
}
