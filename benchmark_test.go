package tuuid

import (
	"testing"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGenerator_New(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := gen.New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkNewV4(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := NewV4()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkUUID_String(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkUUID_BitString(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.BitString()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_URN(b *testing.B) {
	s := "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}
