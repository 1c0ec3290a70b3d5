package schema

import (
	"strconv"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/i18n"
)

// Validate checks the record against the per-type field rules and returns
// errors (missing required fields) and warnings (missing recommended
// fields). Validation never touches the generator: a record that fails
// validation still generates, and a record that generates may still fail
// validation. Callers decide what to do with the result.
func Validate(typ jsonld.SchemaType, rec jsonld.Record) jsonld.Result {
	v := &validator{rec: rec}
	switch typ {
	case jsonld.TypeOrganization:
		v.require("/name", "Name")
		v.require("/url", "URL")
	case jsonld.TypeLocalBusiness:
		v.require("/name", "Business name")
		v.require("/street_address", "Street address")
		v.require("/address_locality", "City")
		v.recommend("/telephone", "Telephone number")
		v.recommend("/opening_hours", "Business hours")
	case jsonld.TypeEvent:
		validateEvent(v)
	case jsonld.TypeFAQPage:
		validateFAQ(v)
	case jsonld.TypeArticle, jsonld.TypeScholarly:
		v.require("/headline", "Headline")
		v.require("/author_name", "Author name")
		v.require("/datePublished", "Publication date")
		v.recommend("/image", "Image")
		v.recommend("/publisher_name", "Publisher name")
	case jsonld.TypeService:
		v.require("/name", "Service name")
		v.require("/service_type", "Service type")
		v.recommend("/provider_name", "Provider name")
		v.recommend("/description", "Description")
	case jsonld.TypeHowTo:
		validateHowTo(v)
	case jsonld.TypePerson:
		v.require("/name", "Name")
		v.recommend("/job_title", "Job title")
		v.recommend("/image", "Image")
	case jsonld.TypeJobPosting:
		validateJobPosting(v)
	case jsonld.TypeCourse:
		v.require("/name", "Course name")
		v.require("/description", "Description")
		v.require("/provider_name", "Provider name")
		v.recommend("/course_mode", "Course mode")
		v.recommend("/image", "Image")
		v.recommendWithHint("/price", "Price", "set to 0 for free courses")
	case jsonld.TypeVideo:
		v.require("/name", "Video title")
		v.require("/description", "Description")
		v.require("/thumbnail_url", "Thumbnail URL")
		v.recommend("/upload_date", "Upload date")
		v.recommend("/duration", "Duration")
	default:
		v.require("/name", "Name")
	}
	return jsonld.Result{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}

func validateEvent(v *validator) {
	v.require("/name", "Event name")
	v.require("/start_date", "Start date")
	v.require("/location_type", "Location type")
	switch v.rec.String("location_type") {
	case "virtual":
		v.require("/virtual_url", "Virtual event URL")
	case "":
	default:
		if !v.rec.Has("location_name") && !v.rec.Has("street_address") {
			v.addError("/location_name", "Location name or street address", nil)
		}
	}
	v.recommend("/description", "Description")
	v.recommend("/image", "Image")
}

func validateFAQ(v *validator) {
	pairs := v.rec.List("questions")
	if len(pairs) == 0 {
		v.addError("/questions", "At least one question", nil)
		return
	}
	for i, pair := range pairs {
		item := map[string]string{"item": "Question", "index": strconv.Itoa(i + 1)}
		if !pair.Has("question") {
			v.addError("/questions/"+strconv.Itoa(i)+"/question", "Question text", item)
		}
		if !pair.Has("answer") {
			v.addError("/questions/"+strconv.Itoa(i)+"/answer", "Answer text", item)
		}
	}
}

func validateHowTo(v *validator) {
	v.require("/name", "Name")
	steps := v.rec.List("steps")
	if len(steps) == 0 {
		v.addError("/steps", "At least one step", nil)
	}
	for i, step := range steps {
		if !step.Has("text") && !step.Has("name") {
			item := map[string]string{"item": "Step", "index": strconv.Itoa(i + 1)}
			v.addError("/steps/"+strconv.Itoa(i)+"/text", "Step text or name", item)
		}
	}
	v.recommend("/description", "Description")
}

func validateJobPosting(v *validator) {
	v.require("/title", "Job title")
	v.require("/description", "Description")
	v.require("/date_posted", "Posting date")
	v.require("/hiring_organization", "Hiring organization")
	v.require("/location_type", "Location type")
	switch v.rec.String("location_type") {
	case "remote", "":
	default:
		v.require("/address_locality", "City")
		v.require("/address_region", "Region")
		v.require("/address_country", "Country")
	}
	v.recommend("/employment_type", "Employment type")
	v.recommend("/salary_value", "Salary")
	v.recommend("/valid_through", "Application deadline")
}

// validator accumulates issues for one record.
type validator struct {
	rec      jsonld.Record
	errors   jsonld.Issues
	warnings jsonld.Issues
}

func (v *validator) require(path, field string) {
	if v.rec.Has(fieldKey(path)) {
		return
	}
	v.addError(path, field, nil)
}

func (v *validator) recommend(path, field string) {
	if v.rec.Has(fieldKey(path)) {
		return
	}
	v.addWarning(path, field, "")
}

func (v *validator) recommendWithHint(path, field, hint string) {
	if v.rec.Has(fieldKey(path)) {
		return
	}
	v.addWarning(path, field, hint)
}

func (v *validator) addError(path, field string, item map[string]string) {
	params := map[string]string{"field": field}
	for k, val := range item {
		params[k] = val
	}
	v.errors = jsonld.AppendIssues(v.errors, jsonld.Issue{
		Path:    path,
		Code:    jsonld.CodeRequired,
		Message: i18n.Message(jsonld.CodeRequired, params),
		Params:  params,
	})
}

func (v *validator) addWarning(path, field, hint string) {
	params := map[string]string{"field": field}
	v.warnings = jsonld.AppendIssues(v.warnings, jsonld.Issue{
		Path:    path,
		Code:    jsonld.CodeRecommended,
		Message: i18n.Message(jsonld.CodeRecommended, params),
		Hint:    hint,
		Params:  params,
	})
}

// fieldKey turns a top-level JSON Pointer into the record key it names.
func fieldKey(path string) string {
	if len(path) > 0 && path[0] == '/' {
		return path[1:]
	}
	return path
}
