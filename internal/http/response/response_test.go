package response

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/yonsai/starter/internal/apperr"
)

func TestSuccess_DefaultMessage(t *testing.T) {
	r := Success("hi")
	if !r.Success || r.Data != "hi" || r.Error != nil {
		t.Fatalf("unexpected envelope: %+v", r)
	}
	if r.Message == nil || *r.Message != "Success" {
		t.Fatalf("message = %v; want Success", r.Message)
	}
}

func TestSuccessWithMessage(t *testing.T) {
	type item struct{ N int }
	r := SuccessWithMessage(item{N: 3}, "created")
	if !r.Success || r.Data.N != 3 || *r.Message != "created" || r.Error != nil {
		t.Fatalf("unexpected envelope: %+v", r)
	}
}

func TestSuccess_Idempotent(t *testing.T) {
	a, b := Success([]int{1, 2}), Success([]int{1, 2})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Success(x) twice differs: %+v vs %+v", a, b)
	}
}

func TestFail_Shape(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })

	r := Fail(apperr.Conflict, "dup")
	if r.Success || r.Data != nil || r.Message != nil || r.Error == nil {
		t.Fatalf("unexpected envelope: %+v", r)
	}
	if r.Error.Code != "CONFLICT" || r.Error.Msg != "dup" || !r.Error.TimeStamp.Equal(fixed) {
		t.Fatalf("unexpected error part: %+v", r.Error)
	}
}

func TestFail_FreshTimestampPerFailure(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	prev := now
	now = func() time.Time { calls++; return base.Add(time.Duration(calls) * time.Millisecond) }
	t.Cleanup(func() { now = prev })

	a := Fail(apperr.BadRequest, "x")
	b := Fail(apperr.BadRequest, "x")
	if a.Error == b.Error {
		t.Fatalf("error parts must not be shared between failures")
	}
	if a.Error.TimeStamp.Equal(b.Error.TimeStamp) {
		t.Fatalf("timestamps should differ: %v", a.Error.TimeStamp)
	}
}

func TestJSON_WireFormat(t *testing.T) {
	ok, err := json.Marshal(Success("Hello Final Project ,,,"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"success":true,"data":"Hello Final Project ,,,","message":"Success","error":null}`
	if string(ok) != want {
		t.Fatalf("success json = %s; want %s", ok, want)
	}

	fail, err := json.Marshal(Fail(apperr.BadRequest, apperr.BadRequest.Message()))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(fail, &m); err != nil {
		t.Fatal(err)
	}
	if m["success"] != false || m["data"] != nil || m["message"] != nil {
		t.Fatalf("failure json = %s", fail)
	}
	e := m["error"].(map[string]any)
	if e["code"] != "BAD_REQUEST" || e["msg"] != "요청이 올바르지 않습니다." {
		t.Fatalf("error json = %v", e)
	}
	ts, _ := e["timeStamp"].(string)
	if _, err := time.Parse(time.RFC3339Nano, ts); err != nil {
		t.Fatalf("timeStamp %q not RFC3339: %v", ts, err)
	}
}

func TestBody_ImplementedByEnvelopes(t *testing.T) {
	var _ Body = Success(1)
	var _ Body = Fail(apperr.InternalError, "x")
}
