package job

import "testing"

func TestBucketBounds(t *testing.T) {
	cases := []struct {
		bucket SalaryBucket
		min    float64
		max    float64
		ok     bool
	}{
		{BucketBelow3, 0, 3, true},
		{Bucket3To6, 3, 6, true},
		{Bucket6To10, 6, 10, true},
		{Bucket10Plus, 10, -1, true},
		{"", 0, 0, false},
		{"3-10", 0, 0, false},
	}
	for _, tc := range cases {
		min, max, ok := BucketBounds(tc.bucket)
		if min != tc.min || max != tc.max || ok != tc.ok {
			t.Fatalf("BucketBounds(%q) = %v/%v/%v, want %v/%v/%v", tc.bucket, min, max, ok, tc.min, tc.max, tc.ok)
		}
	}
}

func TestMatchSalaryBoundaries(t *testing.T) {
	cases := []struct {
		salary float64
		bucket SalaryBucket
		want   bool
	}{
		{2.9, BucketBelow3, true},
		{3, BucketBelow3, false},
		{3, Bucket3To6, true},
		{5.99, Bucket3To6, true},
		{6, Bucket3To6, false},
		{6, Bucket6To10, true},
		{10, Bucket6To10, false},
		{10, Bucket10Plus, true},
		{250, Bucket10Plus, true},
	}
	for _, tc := range cases {
		got := Filters{Salary: tc.bucket}.Match(Job{Salary: tc.salary})
		if got != tc.want {
			t.Fatalf("salary %v in %q = %v, want %v", tc.salary, tc.bucket, got, tc.want)
		}
	}
}

func TestMatchTextFiltersAreCaseInsensitiveSubstrings(t *testing.T) {
	j := Job{
		Title:      "Senior Go Backend Engineer",
		Location:   "Berlin, Germany",
		Type:       "full-time",
		Experience: "senior",
		Status:     StatusActive,
	}

	if !(Filters{Search: "backend"}).Match(j) {
		t.Fatal("lowercase substring must match the title")
	}
	if !(Filters{Location: "BERLIN"}).Match(j) {
		t.Fatal("location match must ignore case")
	}
	if (Filters{Search: "frontend"}).Match(j) {
		t.Fatal("non-substring must not match")
	}
	// Type and experience are exact matches, not substrings.
	if (Filters{Type: "full"}).Match(j) {
		t.Fatal("partial type must not match")
	}
	if !(Filters{Type: "full-time", Experience: "senior"}).Match(j) {
		t.Fatal("exact type and experience must match")
	}
}

func TestMatchIsConjunctive(t *testing.T) {
	j := Job{Title: "Go Engineer", Location: "Berlin", Type: "full-time", Salary: 7, Status: StatusActive}

	all := Filters{Status: StatusActive, Search: "go", Location: "berlin", Type: "full-time", Salary: Bucket6To10}
	if !all.Match(j) {
		t.Fatal("job satisfying every clause must match")
	}
	oneOff := all
	oneOff.Salary = Bucket3To6
	if oneOff.Match(j) {
		t.Fatal("one failing clause must reject the job")
	}
	if (Filters{Status: StatusClosed}).Match(j) {
		t.Fatal("status clause must reject a mismatched job")
	}
	if !(Filters{}).Match(j) {
		t.Fatal("empty filters must match everything")
	}
}
