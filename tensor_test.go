package gravitas

import "testing"

func TestMetricTensorIsSymmetric(t *testing.T) {
	m := NewMetricTensor([16]float64{
		-1, 0.2, 0, 0.3,
		0.2, 2, 0, 0,
		0, 0, 3, 0,
		0.3, 0, 0, 4,
	})
	if !m.IsSymmetric(1e-12) {
		t.Fatalf("expected symmetric tensor to report symmetric")
	}

	m.Set(T, R, 99)
	if m.IsSymmetric(1e-12) {
		t.Fatalf("expected asymmetric tensor to report not symmetric")
	}
}

func TestMetricTensorDeterminantMinkowski(t *testing.T) {
	flat := Diagonal(-1, 1, 1, 1)
	det := flat.Determinant()
	if diff := det - (-1); diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("Minkowski determinant = %v, want -1", det)
	}
}

func TestMetricTensorContractDiagonal(t *testing.T) {
	m := Diagonal(-1, 2, 3, 4)
	p := [4]float64{1, 1, 1, 1}
	got := m.Contract(p)
	want := -1.0 + 2 + 3 + 4
	if got != want {
		t.Fatalf("Contract = %v, want %v", got, want)
	}
}

func TestMetricTensorRaiseIndexIdentity(t *testing.T) {
	m := Diagonal(1, 1, 1, 1)
	p := [4]float64{1, 2, 3, 4}
	got := m.RaiseIndex(p)
	if got != p {
		t.Fatalf("RaiseIndex under identity = %v, want %v", got, p)
	}
}

func TestMetricTensorArrayRoundTrip(t *testing.T) {
	c := [16]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	m := NewMetricTensor(c)
	if m.Array() != c {
		t.Fatalf("Array() did not round-trip the constructor input")
	}
}
