package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-keywordform/pkg/form"
	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/tags"
	"github.com/goliatone/go-keywordform/pkg/testsupport"
)

func newSession(t *testing.T, fn submission.TransportFunc, opts ...Option) *Session {
	t.Helper()
	controller, err := submission.New(fn)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	return New(controller, opts...)
}

func TestSession_EditAndSubmit(t *testing.T) {
	var sent model.FormState
	sess := newSession(t, func(_ context.Context, f model.FormState) (model.ResultData, error) {
		sent = f
		return testsupport.SampleResult(), nil
	})

	if sess.CanSubmit() {
		t.Fatalf("fresh session must not be submittable")
	}

	editor := sess.Keywords()
	for _, kw := range []string{"plumber near me", "emergency plumber"} {
		editor.SetPending(kw)
		if !editor.HandleKey(tags.KeyEnter) {
			t.Fatalf("Enter not consumed")
		}
	}
	sess.Set(form.Location("Austin, TX"))
	if err := sess.SetField(form.FieldMinSearchVolume, "800"); err != nil {
		t.Fatalf("set field: %v", err)
	}

	if !sess.CanSubmit() {
		t.Fatalf("session with location should be submittable")
	}
	if err := sess.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := testsupport.SampleForm()
	want.MinSearchVolume = model.Text("800")
	if diff := cmp.Diff(want, sent); diff != "" {
		t.Fatalf("sent form mismatch (-want +got):\n%s", diff)
	}
	if sess.State().Phase() != submission.PhaseSuccess {
		t.Fatalf("phase = %s, want success", sess.State().Phase())
	}
	if v := sess.View(); v.Results == nil || v.Results.Summary.Stats[0].Value != "120" {
		t.Fatalf("unexpected view: %+v", v)
	}
}

func TestSession_SetFieldUnknown(t *testing.T) {
	sess := newSession(t, func(context.Context, model.FormState) (model.ResultData, error) {
		return model.ResultData{}, nil
	})
	if err := sess.SetField("budget", "1"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("error = %v, want ErrUnknownField", err)
	}
}

func TestSession_InitialForm(t *testing.T) {
	initial := testsupport.SampleForm()
	sess := newSession(t, func(context.Context, model.FormState) (model.ResultData, error) {
		return model.ResultData{}, nil
	}, WithInitialForm(initial))

	initial.SeedKeywords[0] = "mutated"
	if diff := cmp.Diff(testsupport.SampleForm(), sess.Form()); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	if !sess.CanSubmit() {
		t.Fatalf("initial form with location should be submittable")
	}
}

func TestSession_FailureView(t *testing.T) {
	sess := newSession(t, func(context.Context, model.FormState) (model.ResultData, error) {
		return model.ResultData{}, errors.New("boom")
	}, WithInitialForm(testsupport.SampleForm()))

	if err := sess.Submit(context.Background()); !errors.Is(err, submission.ErrSearchFailed) {
		t.Fatalf("error = %v, want ErrSearchFailed", err)
	}
	v := sess.View()
	if v.Error == nil || v.Error.Message != submission.FailureMessage {
		t.Fatalf("unexpected view: %+v", v)
	}
}
