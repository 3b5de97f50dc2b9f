package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/xuri/excelize/v2"

	"github.com/club-ledger/backend/internal/application/usecase/transaction"
	"github.com/club-ledger/backend/internal/domain/entity"
)

func (t *testContext) registerRequestSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I set the header "([^"]*)" to "([^"]*)"$`, t.iSetTheHeader)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequest)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestWithBody)
	ctx.Step(`^I submit the form to "([^"]*)" with:$`, t.iSubmitTheForm)
}

func (t *testContext) registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, t.theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, t.theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, t.theResponseHeaderShouldContain)
	ctx.Step(`^the response body should be:$`, t.theResponseBodyShouldBe)
	ctx.Step(`^the response body should be a workbook with sheet "([^"]*)" and (\d+) rows$`, t.theResponseBodyShouldBeAWorkbook)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, t.iSaveTheResponseField)
}

func (t *testContext) registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the default categories and sections are seeded$`, t.seedDefaults)
	ctx.Step(`^the current date is "([^"]*)"$`, t.theCurrentDateIs)
	ctx.Step(`^the following transactions exist:$`, t.theFollowingTransactionsExist)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, t.theDbShouldContainObjects)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table with the values:$`, t.theDbShouldContainObjectsWithValues)
}

// Request steps

func (t *testContext) iSetTheHeader(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequest(method, path string) error {
	return t.send(method, path, nil, "")
}

func (t *testContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return t.send(method, path, strings.NewReader(t.expand(body.Content)), "application/json")
}

func (t *testContext) iSubmitTheForm(path string, table *godog.Table) error {
	values, err := keyValueTable(table)
	if err != nil {
		return err
	}
	form := url.Values{}
	for k, v := range values {
		form.Set(k, t.expand(v))
	}
	return t.send(http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (t *testContext) send(method, path string, body io.Reader, contentType string) error {
	req, err := http.NewRequest(method, t.uri+t.expand(path), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = &response{status: resp.StatusCode, headers: resp.Header, body: data}
	return nil
}

// expand replaces {name} placeholders with saved response values.
func (t *testContext) expand(s string) string {
	for k, v := range t.saved {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

// Response steps

func (t *testContext) theResponseStatusShouldBe(status int) error {
	if t.response == nil {
		return fmt.Errorf("no request was sent")
	}
	if t.response.status != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, t.response.status, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.getFieldValue(path)
	if err != nil {
		return err
	}
	if actual := formatValue(value); actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(path string) error {
	value, err := t.getFieldValue(path)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("expected field %q to be null, got %v", path, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(path string, count int) error {
	value, err := t.getFieldValue(path)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array: %v", path, value)
	}
	if len(items) != count {
		return fmt.Errorf("expected field %q to have %d items, got %d", path, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(key, expected string) error {
	if t.response == nil {
		return fmt.Errorf("no request was sent")
	}
	if actual := t.response.headers.Get(key); !strings.Contains(actual, expected) {
		return fmt.Errorf("expected header %q to contain %q, got %q", key, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldBe(expected *godog.DocString) error {
	if t.response == nil {
		return fmt.Errorf("no request was sent")
	}
	actual := strings.TrimRight(string(t.response.body), "\n")
	if actual != strings.TrimRight(expected.Content, "\n") {
		return fmt.Errorf("unexpected body:\n%s", actual)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldBeAWorkbook(sheet string, rows int) error {
	if t.response == nil {
		return fmt.Errorf("no request was sent")
	}
	f, err := excelize.OpenReader(bytes.NewReader(t.response.body))
	if err != nil {
		return fmt.Errorf("body is not a workbook: %w", err)
	}
	defer f.Close()

	got, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(got) != rows {
		return fmt.Errorf("expected %d rows in sheet %q, got %d", rows, sheet, len(got))
	}
	return nil
}

func (t *testContext) iSaveTheResponseField(path, name string) error {
	value, err := t.getFieldValue(path)
	if err != nil {
		return err
	}
	t.saved[name] = formatValue(value)
	return nil
}

// getFieldValue walks a dot separated path; numeric segments index arrays.
func (t *testContext) getFieldValue(path string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no request was sent")
	}

	var current any
	if err := json.Unmarshal(t.response.body, &current); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response", path)
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("invalid index %q in path %q", part, path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot descend into %q of path %q", part, path)
		}
	}
	return current, nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		data, _ := json.Marshal(v)
		return string(data)
	}
}

// Data steps

func (t *testContext) theCurrentDateIs(date string) error {
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("transactions table needs a header and at least one row")
	}
	header := table.Rows[0].Cells
	for _, row := range table.Rows[1:] {
		fields := map[string]string{}
		for i, cell := range row.Cells {
			fields[header[i].Value] = cell.Value
		}
		_, err := t.injector.UseCases.RecordTransaction.Execute(context.Background(), transaction.RecordTransactionInput{
			Date:        fields["date"],
			CategoryID:  fields["category_id"],
			SectionID:   fields["section_id"],
			Amount:      fields["amount"],
			Description: fields["description"],
		})
		if err != nil {
			return fmt.Errorf("failed to record %v: %w", fields, err)
		}
	}
	return nil
}

func (t *testContext) theDbShouldContainObjects(count int, table string) error {
	return t.countRows(count, table, nil)
}

func (t *testContext) theDbShouldContainObjectsWithValues(count int, table string, values *godog.Table) error {
	criteria, err := keyValueTable(values)
	if err != nil {
		return err
	}
	where := make(map[string]any, len(criteria))
	for k, v := range criteria {
		where[k] = v
	}
	return t.countRows(count, table, where)
}

func (t *testContext) countRows(count int, table string, where map[string]any) error {
	model, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	query := t.db.DbConn.Model(model)
	if len(where) > 0 {
		query = query.Where(where)
	}

	var actual int64
	if err := query.Count(&actual).Error; err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if int(actual) != count {
		return fmt.Errorf("expected %d objects in %q, got %d", count, table, actual)
	}
	return nil
}

// keyValueTable reads a two column | key | value | table.
func keyValueTable(table *godog.Table) (map[string]string, error) {
	values := make(map[string]string, len(table.Rows))
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return nil, fmt.Errorf("expected two columns, got %d", len(row.Cells))
		}
		values[row.Cells[0].Value] = row.Cells[1].Value
	}
	return values, nil
}
