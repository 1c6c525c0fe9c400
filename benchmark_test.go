package lazyxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"testing"
)

func loadBenchmarkData(b *testing.B) []byte {
	data, err := os.ReadFile("testdata/books.xml")
	if err != nil {
		b.Fatalf("failed to load data: %v", err)
	}
	return data
}

func BenchmarkRawWalk(b *testing.B) {
	data := loadBenchmarkData(b)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		r := Parse(data)
		for {
			next, err := r.Next()
			if err == io.EOF {
				break
			} else if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			r = next
		}
	}
}

func BenchmarkParseNode(b *testing.B) {
	data := loadBenchmarkData(b)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		if _, err := ParseNode(data); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkStdlibRawToken(b *testing.B) {
	data := loadBenchmarkData(b)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		d := xml.NewDecoder(bytes.NewReader(data))
		for {
			_, err := d.RawToken()
			if err == io.EOF {
				break
			} else if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	}
}

func BenchmarkWrite(b *testing.B) {
	doc, err := ParseNode(loadBenchmarkData(b))
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = doc.String()
	}
}
