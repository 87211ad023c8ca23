package matchers

import "testing"

func TestEqual(t *testing.T) {
	assertPasses(t, 3, Equal(3))
	assertFails(t, 4, Equal(3), "expected: equal to 3\nbut: was 4")

	assertPasses(t, map[string]interface{}{"a": []int{1, 2}},
		Equal(map[string]interface{}{"a": []int{1, 2}}))
}

func TestBeNil(t *testing.T) {
	var nilPtr *int
	var nilSlice []string
	assertPasses(t, nil, BeNil())
	assertPasses(t, nilPtr, BeNil())
	assertPasses(t, nilSlice, BeNil())

	assertFails(t, 3, BeNil(), "expected: nil\nbut: was 3")
	assertFails(t, []string{}, BeNil(), "expected: nil\nbut: was []")
}
