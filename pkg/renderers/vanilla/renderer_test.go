package vanilla

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-keywordform/pkg/locations"
	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/testsupport"
	"github.com/goliatone/go-keywordform/pkg/view"
)

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("output missing %q:\n%s", fragment, html)
		}
	}
}

func TestRenderView_Success(t *testing.T) {
	r := mustRenderer(t)
	out, err := r.RenderView(context.Background(), view.Project(submission.Succeeded{Result: testsupport.SampleResult()}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	assertContains(t, html,
		`<div class="results-summary">`,
		`<span class="stat-number">120</span><span class="stat-label">Total Keywords</span>`,
		`<span class="stat-number">24.3s</span>`,
		`<span class="stat-number">4</span><span class="stat-label">Ad Groups</span>`,
		`<div class="ad-group-card">`,
		`<h3>Emergency Plumbing</h3>`,
		`<span class="budget">$1,200.00</span>`,
		`<span class="percentage">60%</span>`,
		`<h4>Keywords (2):</h4>`,
		`<h4>Keywords (0):</h4>`,
		`<span class="search-volume">12,000 searches/month</span>`,
		`<span class="cpc-range">$4.50 - $12.25 CPC</span>`,
		`<span class="match-types">exact, phrase</span>`,
	)
	if strings.Contains(html, "loading-state") || strings.Contains(html, "error-message") {
		t.Fatalf("success view rendered other states:\n%s", html)
	}
	if strings.Index(html, "Emergency Plumbing") > strings.Index(html, "Local Services") {
		t.Fatalf("ad groups rendered out of order")
	}
}

func TestRenderView_NoDeliverable(t *testing.T) {
	r := mustRenderer(t)
	result := model.ResultData{TotalKeywords: 3, ProcessingTime: 1}
	out, err := r.RenderView(context.Background(), view.Project(submission.Succeeded{Result: result}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	assertContains(t, html, `<span class="stat-number">0</span><span class="stat-label">Ad Groups</span>`)
	if strings.Contains(html, "ad-groups-container") {
		t.Fatalf("ad group section rendered without deliverable:\n%s", html)
	}
}

func TestRenderView_LoadingAndError(t *testing.T) {
	r := mustRenderer(t)

	out, err := r.RenderView(context.Background(), view.Project(submission.Loading{}))
	if err != nil {
		t.Fatalf("render loading: %v", err)
	}
	assertContains(t, string(out), `<div class="loading-state">`, "This may take 20-30 seconds")

	out, err = r.RenderView(context.Background(), view.Project(submission.Failed{Message: submission.FailureMessage}))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	assertContains(t, string(out), `<div class="error-message">Failed to fetch keyword research. Please try again.</div>`)

	out, err = r.RenderView(context.Background(), view.Project(submission.Idle{}))
	if err != nil {
		t.Fatalf("render idle: %v", err)
	}
	if strings.TrimSpace(string(out)) != "" {
		t.Fatalf("idle view rendered content: %q", out)
	}
}

func TestRenderView_EscapesRemoteText(t *testing.T) {
	r := mustRenderer(t)
	result := model.ResultData{
		Deliverable: &model.Deliverable{AdGroups: []model.AdGroup{{
			GroupName: `<img src=x onerror=alert(1)>Brand`,
			GroupType: "search",
			Keywords: []model.KeywordResult{{
				Keyword:             `<b>plumber</b>`,
				CompetitionLevel:    "LOW",
				SuggestedMatchTypes: []string{"exact"},
			}},
		}}},
	}
	out, err := r.RenderView(context.Background(), view.Project(submission.Succeeded{Result: result}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<img") || strings.Contains(html, "<b>") {
		t.Fatalf("markup from the service reached the page:\n%s", html)
	}
	assertContains(t, html,
		`<h3>&lt;img src=x onerror=alert(1)&gt;Brand</h3>`,
		`"&lt;b&gt;plumber&lt;/b&gt;"`,
	)
}

func TestRenderView_KeepsTagShapedText(t *testing.T) {
	r := mustRenderer(t)
	result := model.ResultData{
		Deliverable: &model.Deliverable{AdGroups: []model.AdGroup{{
			GroupName: "Tools <Pro>",
			GroupType: "search",
			Keywords: []model.KeywordResult{{
				Keyword:             "pipe wrench <24 inch>",
				CompetitionLevel:    "MEDIUM",
				SuggestedMatchTypes: []string{"phrase"},
			}},
		}}},
	}
	out, err := r.RenderView(context.Background(), view.Project(submission.Succeeded{Result: result}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, string(out),
		`<h3>Tools &lt;Pro&gt;</h3>`,
		`"pipe wrench &lt;24 inch&gt;"`,
	)
}

func TestRenderPage(t *testing.T) {
	r := mustRenderer(t)
	form := testsupport.SampleForm()
	form.SearchAdsBudget = model.Text("3500")

	page := NewPage(PageInput{
		Form:      form,
		Pending:   "drain cleaning",
		CanSubmit: true,
		View:      view.Project(submission.Idle{}),
		Catalog:   locations.New("Dallas, TX", "Austin, TX"),
	})
	out, err := r.RenderPage(context.Background(), page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	assertContains(t, html,
		`<title>AI-Powered Keyword Search</title>`,
		`<input type="hidden" name="seed_keywords" value="plumber near me">`,
		`<input type="hidden" name="seed_keywords" value="emergency plumber">`,
		`name="remove_keyword" value="1"`,
		`value="drain cleaning"`,
		`<option value="Austin, TX" selected>Austin, TX</option>`,
		`<option value="Dallas, TX">Dallas, TX</option>`,
		`name="min_search_volume" value="500"`,
		`name="search_ads_budget" value="3500"`,
		`class="submit-btn">Generate Keywords &amp; Ad Groups</button>`,
	)
	if strings.Index(html, `formaction="/keywords" name="commit_keyword"`) > strings.Index(html, `class="submit-btn"`) {
		t.Fatalf("keyword commit button must precede the submit button")
	}
}

func TestNewPage_SubmitDisabled(t *testing.T) {
	catalog := locations.New("Austin, TX")

	page := NewPage(PageInput{Form: model.NewFormState(), Catalog: catalog, View: view.Project(nil)})
	if !page.SubmitDisabled {
		t.Fatalf("submit must be disabled without a location")
	}

	page = NewPage(PageInput{Form: testsupport.SampleForm(), CanSubmit: true, Catalog: catalog, View: view.Project(submission.Loading{})})
	if !page.SubmitDisabled || page.SubmitLabel != SubmitLabelLoading {
		t.Fatalf("submit must be disabled while loading: %+v", page)
	}

	page = NewPage(PageInput{Form: testsupport.SampleForm(), CanSubmit: true, Catalog: catalog, View: view.Project(nil)})
	if page.SubmitDisabled || page.SubmitLabel != SubmitLabel {
		t.Fatalf("submit should be enabled: %+v", page)
	}
}

func TestRenderPage_EscapesUserInput(t *testing.T) {
	r := mustRenderer(t)
	form := testsupport.SampleForm()
	form.BrandWebsite = `"><script>x</script>`
	out, err := r.RenderPage(context.Background(), NewPage(PageInput{
		Form:    form,
		Catalog: locations.New("Austin, TX"),
		View:    view.Project(nil),
	}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>x</script>") {
		t.Fatalf("user input rendered unescaped")
	}
}
