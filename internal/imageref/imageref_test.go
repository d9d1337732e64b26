package imageref

import "testing"

func TestResolve_Defaults(t *testing.T) {
	var r Resolver

	got := r.Resolve("abc123.jpg")
	want := "https://nebula.wsimg.com/abc123.jpg?AccessKeyId=65531CC4E6E01F7CEEA0&disposition=0&alloworigin=1"
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolve_Configured(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		params []string
		id     string
		want   string
	}{
		{
			name:   "custom host and params",
			host:   "https://img.example.com/",
			params: []string{"token=x", "w=800"},
			id:     "club/1.jpg",
			want:   "https://img.example.com/club/1.jpg?token=x&w=800",
		},
		{
			name:   "empty params list drops query",
			host:   "https://img.example.com",
			params: []string{},
			id:     "a.png",
			want:   "https://img.example.com/a.png",
		},
		{
			name:   "empty host uses default",
			host:   "",
			params: nil,
			id:     "x",
			want:   "https://nebula.wsimg.com/x?" + DefaultParams,
		},
		{
			name:   "identifier is used verbatim",
			host:   "https://img.example.com",
			params: []string{},
			id:     "/a b.png",
			want:   "https://img.example.com//a b.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.host, tt.params)
			if got := r.Resolve(tt.id); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := New("https://img.example.com", []string{"a=1"})
	if r.Resolve("id") != r.Resolve("id") {
		t.Error("Resolve should be deterministic")
	}
}

func TestResolveAll_PreservesOrder(t *testing.T) {
	r := New("https://h", []string{})
	got := r.ResolveAll([]string{"b", "a", "c"})
	want := []string{"https://h/b", "https://h/a", "https://h/c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
