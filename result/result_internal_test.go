package result

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
)

func TestVariants(t *testing.T) {
	g := NewWithT(t)

	ok := Ok[string, error]("foo")
	g.Expect(ok.IsOk()).To(BeTrue())
	g.Expect(ok.IsErr()).To(BeFalse())
	g.Expect(ok.Kind()).To(Equal(OkKind))

	failed := Err[string](errors.New("boom"))
	g.Expect(failed.IsOk()).To(BeFalse())
	g.Expect(failed.IsErr()).To(BeTrue())
	g.Expect(failed.Kind()).To(Equal(ErrKind))

	g.Expect(OkKind.String()).To(Equal("ok"))
	g.Expect(ErrKind.String()).To(Equal("err"))
}

func TestConstructionRejectsNil(t *testing.T) {
	g := NewWithT(t)

	g.Expect(func() { Ok[*int, error](nil) }).To(Panic())
	g.Expect(func() { Err[string, error](nil) }).To(Panic())
	g.Expect(func() { Ok[string, error]("foo") }).NotTo(Panic())
}

func TestPayloadAccess(t *testing.T) {
	g := NewWithT(t)

	ok := Ok[string, error]("foo")
	v, isOk := ok.Value()
	g.Expect(isOk).To(BeTrue())
	g.Expect(v).To(Equal("foo"))
	_, isErr := ok.ErrValue()
	g.Expect(isErr).To(BeFalse())

	boom := errors.New("boom")
	failed := Err[string](boom)
	_, isOk = failed.Value()
	g.Expect(isOk).To(BeFalse())
	e, isErr := failed.ErrValue()
	g.Expect(isErr).To(BeTrue())
	g.Expect(e).To(Equal(boom))
}

func TestUnwrap(t *testing.T) {
	g := NewWithT(t)

	boom := errors.New("boom")

	g.Expect(Ok[string, error]("foo").Unwrap()).To(Equal("foo"))
	g.Expect(Ok[string, error]("foo").UnwrapOr("bar")).To(Equal("foo"))
	g.Expect(Err[string](boom).UnwrapOr("bar")).To(Equal("bar"))
	g.Expect(Err[string](boom).UnwrapErr()).To(Equal(boom))

	g.Expect(func() { Err[string](boom).Unwrap() }).To(Panic())
	g.Expect(func() { Ok[string, error]("foo").UnwrapErr() }).To(Panic())
}

func TestCopy(t *testing.T) {
	g := NewWithT(t)

	ok := Ok[string, error]("foo")
	g.Expect(ok.Copy().Equal(ok)).To(BeTrue())

	failed := Err[string](errors.New("boom"))
	g.Expect(failed.Copy().Equal(failed)).To(BeTrue())
	g.Expect(failed.Copy().IsErr()).To(BeTrue())
}

func TestMap(t *testing.T) {
	g := NewWithT(t)

	appended := Map(Ok[string, error]("foo"), func(s string) string { return s + "bar" })
	g.Expect(appended.Equal(Ok[string, error]("foobar"))).To(BeTrue())

	boom := errors.New("boom")
	failed := Map(Err[string](boom), func(s string) string {
		t.Fatal("mapper must not run on Err")
		return s
	})
	g.Expect(failed.UnwrapErr()).To(Equal(boom))
}

func TestMapErr(t *testing.T) {
	g := NewWithT(t)

	boom := errors.New("boom")
	wrapped := MapErr(Err[string](boom), func(err error) string {
		return fmt.Sprintf("wrapped: %v", err)
	})
	g.Expect(wrapped.UnwrapErr()).To(Equal("wrapped: boom"))

	ok := MapErr(Ok[string, error]("foo"), func(err error) string {
		t.Fatal("mapper must not run on Ok")
		return ""
	})
	g.Expect(ok.Unwrap()).To(Equal("foo"))
}

func TestFlatMap(t *testing.T) {
	g := NewWithT(t)

	appended := FlatMap(Ok[string, error]("foo"), func(s string) Result[string, error] {
		return Ok[string, error](s + "bar")
	})
	g.Expect(appended.Equal(Ok[string, error]("foobar"))).To(BeTrue())

	boom := errors.New("boom")
	rejected := FlatMap(Ok[string, error]("foo"), func(string) Result[int, error] {
		return Err[int](boom)
	})
	g.Expect(rejected.UnwrapErr()).To(Equal(boom))

	failed := FlatMap(Err[string](boom), func(s string) Result[string, error] {
		t.Fatal("mapper must not run on Err")
		return Ok[string, error](s)
	})
	g.Expect(failed.UnwrapErr()).To(Equal(boom))
}

func TestEqualAndHash(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Ok[string, string]("foo").Equal(Ok[string, string]("foo"))).To(BeTrue())
	g.Expect(Ok[string, string]("foo").Equal(Ok[string, string]("bar"))).To(BeFalse())
	g.Expect(Err[string, string]("boom").Equal(Err[string, string]("boom"))).To(BeTrue())
	// same payload in opposite variants is not equal
	g.Expect(Ok[string, string]("foo").Equal(Err[string, string]("foo"))).To(BeFalse())

	g.Expect(Ok[string, string]("foo").Hash()).To(Equal(Ok[string, string]("foo").Hash()))
	g.Expect(Ok[string, string]("foo").Hash()).NotTo(Equal(Err[string, string]("foo").Hash()))
}

func TestHashConsistentWithEqualForPointers(t *testing.T) {
	g := NewWithT(t)

	a, b := 5, 5
	first := Ok[*int, error](&a)
	second := Ok[*int, error](&b)
	g.Expect(first.Equal(second)).To(BeTrue())
	g.Expect(first.Hash()).To(Equal(second.Hash()))

	c := 6
	g.Expect(first.Hash()).NotTo(Equal(Ok[*int, error](&c).Hash()))

	e1 := Err[string](&a)
	e2 := Err[string](&b)
	g.Expect(e1.Equal(e2)).To(BeTrue())
	g.Expect(e1.Hash()).To(Equal(e2.Hash()))

	// distinct error instances with the same message are deeply equal
	f1 := Err[string](errors.New("boom"))
	f2 := Err[string](errors.New("boom"))
	g.Expect(f1.Equal(f2)).To(BeTrue())
	g.Expect(f1.Hash()).To(Equal(f2.Hash()))
}

func TestString(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Ok[string, error]("foo").String()).To(Equal("Result.Ok(foo)"))
	g.Expect(Err[string](errors.New("boom")).String()).To(Equal("Result.Err(boom)"))
}
