package types

import (
	"errors"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestAccessionRecordLabel(t *testing.T) {
	tests := []struct {
		rec  AccessionRecord
		want string
	}{
		{AccessionRecord{Accession: "ABC12345"}, "ABC12345"},
		{AccessionRecord{Accession: "ABC12345", From: intPtr(100), To: intPtr(200)}, "ABC12345 100-200"},
		{AccessionRecord{Accession: "ABC12345", From: intPtr(100), To: intPtr(200), Strand: intPtr(1)}, "ABC12345 100-200 strand=1"},
		{AccessionRecord{Accession: "NG_049033.1", Strand: intPtr(2)}, "NG_049033.1 strand=2"},
		{AccessionRecord{Accession: "ABC12345", From: intPtr(100)}, "ABC12345"},
	}
	for _, tt := range tests {
		if got := tt.rec.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestAccessionRecordHasRange(t *testing.T) {
	if (AccessionRecord{Accession: "A1"}).HasRange() {
		t.Error("HasRange() = true for record without range")
	}
	if (AccessionRecord{Accession: "A1", To: intPtr(5)}).HasRange() {
		t.Error("HasRange() = true for record with only To")
	}
	if !(AccessionRecord{Accession: "A1", From: intPtr(1), To: intPtr(5)}).HasRange() {
		t.Error("HasRange() = false for record with both ends")
	}
}

func TestFetchResultOK(t *testing.T) {
	if !(FetchResult{Body: ">a\n"}).OK() {
		t.Error("OK() = false for result without error")
	}
	if (FetchResult{Err: errors.New("boom")}).OK() {
		t.Error("OK() = true for failed result")
	}
}
