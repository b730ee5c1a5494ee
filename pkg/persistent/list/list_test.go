package list

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.elv.sh/plist/pkg/testutil"
	"src.elv.sh/plist/pkg/tt"
)

func TestEmpty(t *testing.T) {
	for _, l := range []List[int]{Empty[int](), {}} {
		if n := l.Len(); n != 0 {
			t.Errorf("l.Len() == %v, want 0", n)
		}
		if !l.IsEmpty() {
			t.Errorf("l.IsEmpty() == false, want true")
		}
		if v, ok := l.Get(0); ok {
			t.Errorf("l.Get(0) == (%v, true), want absent", v)
		}
		if v, ok := l.Head(); ok {
			t.Errorf("l.Head() == (%v, true), want absent", v)
		}
		if _, ok := l.Tail(); ok {
			t.Errorf("l.Tail() returns ok, want absent")
		}
		if _, _, ok := l.HeadAndTail(); ok {
			t.Errorf("l.HeadAndTail() returns ok, want absent")
		}
	}
}

func TestPushFront(t *testing.T) {
	const n = 100
	var l List[int]
	for i := 0; i < n; i++ {
		old := l
		l = l.PushFront(i)

		if count := old.Len(); count != i {
			t.Errorf("old.Len() == %v, want %v", count, i)
		}
		if count := l.Len(); count != i+1 {
			t.Errorf("l.Len() == %v, want %v", count, i+1)
		}
		if v, ok := l.Get(0); !ok || v != i {
			t.Errorf("l.Get(0) == (%v, %v), want (%v, true)", v, ok, i)
		}
		for j := 0; j <= i; j++ {
			v1, ok1 := l.Get(j + 1)
			v2, ok2 := old.Get(j)
			if v1 != v2 || ok1 != ok2 {
				t.Errorf("l.Get(%v) == (%v, %v), old.Get(%v) == (%v, %v)",
					j+1, v1, ok1, j, v2, ok2)
			}
		}
	}
}

func TestGet(t *testing.T) {
	l := Of("a", "b", "c")
	tt.Test(t, tt.Fn("l.Get", l.Get), tt.Table{
		tt.Args(0).Rets("a", true),
		tt.Args(1).Rets("b", true),
		tt.Args(2).Rets("c", true),
		tt.Args(3).Rets("", false),
		tt.Args(-1).Rets("", false),
	})
}

func TestIndex(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	for i, want := range []int{1, 2, 3} {
		if v := l.Index(i); v != want {
			t.Errorf("l.Index(%v) == %v, want %v", i, v, want)
		}
	}

	tt.Test(t, tt.Fn("Recover", testutil.Recover), tt.Table{
		tt.Args(func() { l.Index(3) }).Rets(
			OutOfRange{What: "list index", ValidLow: 0, ValidHigh: 2, Actual: "3"}),
		tt.Args(func() { l.Index(-1) }).Rets(
			OutOfRange{What: "list index", ValidLow: 0, ValidHigh: 2, Actual: "-1"}),
		tt.Args(func() { Empty[int]().Index(0) }).Rets(
			OutOfRange{What: "list index", ValidLow: 0, ValidHigh: -1, Actual: "0"}),
	})
}

func TestOutOfRange_Error(t *testing.T) {
	tt.Test(t, tt.Fn("Error", error.Error), tt.Table{
		tt.Args(OutOfRange{What: "list index", ValidLow: 0, ValidHigh: 2, Actual: "3"}).
			Rets("out of range: list index must be from 0 to 2, but is 3"),
		tt.Args(OutOfRange{What: "list index", ValidLow: 0, ValidHigh: -1, Actual: "0"}).
			Rets("out of range: list index has no valid value, but is 0"),
	})
}

func TestHeadAndTail(t *testing.T) {
	l := Of(1, 2, 3)

	if v, ok := l.Head(); !ok || v != 1 {
		t.Errorf("l.Head() == (%v, %v), want (1, true)", v, ok)
	}
	tail, ok := l.Tail()
	if !ok {
		t.Fatalf("l.Tail() returns not ok")
	}
	if tail.head != l.head.rest {
		t.Errorf("l.Tail() does not share cells with l")
	}
	if got := tail.Slice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("l.Tail() == %v, want [2 3]", got)
	}

	v, tail2, ok := l.HeadAndTail()
	if !ok || v != 1 || tail2 != tail {
		t.Errorf("l.HeadAndTail() == (%v, %v, %v), want (1, %v, true)", v, tail2, ok, tail)
	}

	single := Of(1)
	tail, ok = single.Tail()
	if !ok || !tail.IsEmpty() {
		t.Errorf("Of(1).Tail() == (%v, %v), want ([], true)", tail, ok)
	}
}

func TestConstruction(t *testing.T) {
	want := []int{1, 2, 3}
	for name, l := range map[string]List[int]{
		"Of":            Of(1, 2, 3),
		"FromSlice":     FromSlice(want),
		"Collect":       Collect(slices.Values(want)),
		"FromSliceFunc": FromSliceFunc(want, func(i int) int { return i }),
	} {
		if n := l.Len(); n != 3 {
			t.Errorf("%s: Len() == %v, want 3", name, n)
		}
		if diff := cmp.Diff(want, l.Slice()); diff != "" {
			t.Errorf("%s: elements (-want +got):\n%s", name, diff)
		}
		if v, ok := l.Get(3); ok {
			t.Errorf("%s: Get(3) == (%v, true), want absent", name, v)
		}
	}
}

func TestFromSliceFunc_Duplicates(t *testing.T) {
	s := [][]int{{1}, {2}}
	l := FromSliceFunc(s, slices.Clone[[]int])
	s[0][0] = 100
	if v := l.Index(0)[0]; v != 1 {
		t.Errorf("element changed to %v after changing the source slice", v)
	}
}

func TestCollect_Empty(t *testing.T) {
	l := Collect(slices.Values([]int(nil)))
	if !l.IsEmpty() {
		t.Errorf("Collect of empty sequence == %v, want []", l)
	}
}

func TestAll(t *testing.T) {
	l := Of(5, 6, 7)
	// Iterating twice must give the same result.
	for range 2 {
		var got []int
		for v := range l.All() {
			got = append(got, v)
		}
		if !slices.Equal(got, []int{5, 6, 7}) {
			t.Errorf("got %v, want [5 6 7]", got)
		}
	}

	var got []int
	for v := range l.All() {
		if v == 6 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{5}) {
		t.Errorf("got %v with break, want [5]", got)
	}
}

func TestEnumerate(t *testing.T) {
	var got [][2]any
	for i, v := range Of("x", "y").Enumerate() {
		got = append(got, [2]any{i, v})
	}
	want := [][2]any{{0, "x"}, {1, "y"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Enumerate (-want +got):\n%s", diff)
	}

	n := 0
	for range Of(1, 2, 3).Enumerate() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("Enumerate does not stop on break")
	}
}

func TestIterator(t *testing.T) {
	l := Of(1, 2, 3)
	var got []int
	for it := l.Iterator(); it.HasElem(); it.Next() {
		got = append(got, it.Elem())
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}

	it := l.Iterator()
	it.Next()
	if rest := it.Rest(); rest.head != l.head.rest {
		t.Errorf("it.Rest() does not share cells with l")
	}
	it.Next()
	it.Next()
	it.Next()
	if it.HasElem() {
		t.Errorf("it.HasElem() == true after the end")
	}
	if r := testutil.Recover(func() { it.Elem() }); r == nil {
		t.Errorf("it.Elem() after the end does not panic")
	}
}

func TestSharing(t *testing.T) {
	base := Of(1, 2, 3)
	e1 := base.PushFront(4)
	e2 := base.PushFront(5)

	for _, c := range []struct {
		l    List[int]
		want []int
	}{
		{e1, []int{4, 1, 2, 3}},
		{e2, []int{5, 1, 2, 3}},
		{base, []int{1, 2, 3}},
	} {
		if diff := cmp.Diff(c.want, c.l.Slice()); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
	if e1.head.rest != base.head || e2.head.rest != base.head {
		t.Errorf("derived lists do not share cells with base")
	}
}

func TestLongList(t *testing.T) {
	const n = 1000000
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	for _, l := range []List[int]{FromSlice(s), Collect(slices.Values(s))} {
		if got := l.Len(); got != n {
			t.Errorf("Len() == %v, want %v", got, n)
		}
		if v := l.Index(n - 1); v != n-1 {
			t.Errorf("Index(n-1) == %v, want %v", v, n-1)
		}
		if got := Reverse(Reverse(l)).Len(); got != n {
			t.Errorf("Reverse(Reverse(l)).Len() == %v, want %v", got, n)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	base := FromSlice(make([]int, 1000))
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			derived := base.PushFront(i)
			if Concat(derived, base).Len() != 2001 {
				errs <- errors.New("wrong length of concatenation")
			}
			sum := 0
			for v := range base.All() {
				sum += v
			}
			if sum != 0 || base.Len() != 1000 {
				errs <- errors.New("base changed")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func BenchmarkPushFront(b *testing.B) {
	for range b.N {
		var l List[int]
		for i := 0; i < 1000; i++ {
			l = l.PushFront(i)
		}
	}
}

func BenchmarkAll(b *testing.B) {
	l := FromSlice(make([]int, 1000))
	b.ResetTimer()
	for range b.N {
		for range l.All() {
		}
	}
}
