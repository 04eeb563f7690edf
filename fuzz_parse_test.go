package localtoken

import (
	"testing"
	"time"
)

// FuzzParseAccessToken exercises the access token parser with arbitrary
// inputs. Goal: no panics; invalid inputs must be rejected with errors.
func FuzzParseAccessToken(f *testing.F) {
	codec, err := NewCodec(DefaultConfig(testMasterKey))
	if err != nil {
		f.Fatal(err)
	}
	issuer := "https://cell.example/"
	valid, err := codec.EncodeAccessToken(NewToken(time.Now().UnixMilli(), 3600000,
		issuer, "https://cell.example/__ctl/Account('bob')", nil, ""))
	if err != nil {
		f.Fatal(err)
	}

	f.Add(valid, issuer)
	f.Add("", issuer)
	f.Add("AL~", issuer)
	f.Add("AL~not-valid-ciphertext", issuer)
	f.Add("GC~not-an-access-token", issuer)
	f.Add(valid, "")
	f.Add(valid, "https://other.example/")

	f.Fuzz(func(t *testing.T, input, iss string) {
		token, err := codec.ParseAccessToken(input, iss)
		if err != nil {
			if token != nil {
				t.Fatal("ParseAccessToken returned a record alongside an error")
			}
			return
		}
		if token == nil {
			t.Fatal("ParseAccessToken returned nil record without error")
		}
	})
}

// FuzzParseAuthorizationCode mirrors FuzzParseAccessToken for the code
// variant.
func FuzzParseAuthorizationCode(f *testing.F) {
	codec, err := NewCodec(DefaultConfig(testMasterKey))
	if err != nil {
		f.Fatal(err)
	}
	issuer := "https://cell.example/"
	valid, err := codec.EncodeAuthorizationCode(NewToken(time.Now().UnixMilli(), 600000,
		issuer, "https://cell.example/__ctl/Account('bob')", nil, ""))
	if err != nil {
		f.Fatal(err)
	}

	f.Add(valid, issuer)
	f.Add("GC~", issuer)
	f.Add("AL~wrong-family", issuer)
	f.Add(valid, "")

	f.Fuzz(func(t *testing.T, input, iss string) {
		token, err := codec.ParseAuthorizationCode(input, iss)
		if err != nil {
			if token != nil {
				t.Fatal("ParseAuthorizationCode returned a record alongside an error")
			}
			return
		}
		if token == nil {
			t.Fatal("ParseAuthorizationCode returned nil record without error")
		}
	})
}
