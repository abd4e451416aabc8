package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"collegeerp/internal/app/server"
	"collegeerp/internal/domain/auth"
	"collegeerp/internal/platform/config"
	"collegeerp/internal/platform/db"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

func TestStudentAndTeacherJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:         dbURL,
		JWTSecret:           "test-secret",
		TokenTTL:            time.Hour,
		Environment:         "test",
		MaxBodyBytes:        1048576,
		RateLimitPerMinute:  1000,
		StorageProofsBucket: "leave-proofs",
		MaxProofBytes:       5 * 1024 * 1024,
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool, "../../../../migrations"); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	if err := db.Seed(ctx, pool, cfg); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	suffix := time.Now().UnixNano()
	teacherEmail := fmt.Sprintf("teacher-%d@test.local", suffix)
	reviewerEmail := fmt.Sprintf("reviewer-%d@test.local", suffix)
	studentEmail := fmt.Sprintf("student-%d@test.local", suffix)

	fx := seedFixtures(t, ctx, pool, teacherEmail, reviewerEmail, studentEmail)

	app := server.New(cfg, pool)
	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	teacherToken := login(t, client, ts.URL, teacherEmail, "Teach123!")
	studentToken := login(t, client, ts.URL, studentEmail, "Study123!")

	// Teacher marks two roll calls and enters marks.
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	for _, date := range []string{yesterday, today} {
		doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/session", teacherToken, map[string]any{
			"courseId": fx.courseID,
			"date":     date,
			"entries":  []map[string]any{{"studentId": fx.studentID, "status": "Present"}},
		}, http.StatusOK)
	}

	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/marks/", teacherToken, map[string]any{
		"studentId": fx.studentID,
		"courseId":  fx.courseID,
		"internal1": 80.0,
		"internal2": 90.0,
		"cgpa":      8.5,
	}, http.StatusOK)

	// Teacher publishes an assignment and a calendar event.
	due := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/assignments/", teacherToken, map[string]any{
		"courseId": fx.courseID,
		"title":    "Graph algorithms worksheet",
		"dueDate":  due,
	}, http.StatusCreated)

	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/calendar/events", teacherToken, map[string]any{
		"title":     "Midterm Exam",
		"startDate": due,
		"endDate":   due,
	}, http.StatusCreated)

	// Student sees the attendance summary with both sessions counted.
	var summary struct {
		Overall struct {
			Present    int `json:"present"`
			Percentage int `json:"percentage"`
		} `json:"overall"`
	}
	getJSON(t, client, ts.URL+"/api/v1/attendance/summary", studentToken, &summary)
	if summary.Overall.Present != 2 || summary.Overall.Percentage != 100 {
		t.Fatalf("expected 2 present at 100%%, got %+v", summary.Overall)
	}

	// Raw records honor limit/offset; an unbounded call returns both rows.
	var records []json.RawMessage
	getJSON(t, client, ts.URL+"/api/v1/attendance/records", studentToken, &records)
	if len(records) != 2 {
		t.Fatalf("expected 2 attendance records, got %d", len(records))
	}
	var firstPage []struct {
		Date string `json:"date"`
	}
	getJSON(t, client, ts.URL+"/api/v1/attendance/records?limit=1", studentToken, &firstPage)
	if len(firstPage) != 1 {
		t.Fatalf("expected 1 record on the first page, got %d", len(firstPage))
	}
	var secondPage []struct {
		Date string `json:"date"`
	}
	getJSON(t, client, ts.URL+"/api/v1/attendance/records?limit=1&offset=1", studentToken, &secondPage)
	if len(secondPage) != 1 {
		t.Fatalf("expected 1 record on the second page, got %d", len(secondPage))
	}
	if firstPage[0].Date == secondPage[0].Date {
		t.Fatalf("expected the pages to hold different sessions, both got %s", firstPage[0].Date)
	}

	var report struct {
		Rows []struct {
			Total *float64 `json:"total"`
			Grade string   `json:"grade"`
		} `json:"rows"`
	}
	getJSON(t, client, ts.URL+"/api/v1/marks/report", studentToken, &report)
	if len(report.Rows) != 1 {
		t.Fatalf("expected one mark row, got %d", len(report.Rows))
	}
	if report.Rows[0].Total == nil || *report.Rows[0].Total != 85 {
		t.Fatalf("expected total 85, got %+v", report.Rows[0].Total)
	}
	if report.Rows[0].Grade != "A" {
		t.Fatalf("expected grade A, got %s", report.Rows[0].Grade)
	}

	var parts struct {
		Upcoming []json.RawMessage `json:"upcoming"`
		Past     []json.RawMessage `json:"past"`
	}
	getJSON(t, client, ts.URL+"/api/v1/assignments/", studentToken, &parts)
	if len(parts.Upcoming) != 1 || len(parts.Past) != 0 {
		t.Fatalf("expected one upcoming assignment, got %d upcoming %d past", len(parts.Upcoming), len(parts.Past))
	}

	// Leave lifecycle: too short a reason fails, a valid one goes through.
	from := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	to := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave/", studentToken, map[string]any{
		"fromDate": from, "toDate": to, "reason": "too short",
	}, http.StatusBadRequest)

	created := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave/", studentToken, map[string]any{
		"fromDate": from, "toDate": to, "reason": "family wedding out of town",
	}, http.StatusCreated)
	var leaveRef struct {
		LeaveID int64 `json:"leaveId"`
	}
	if err := json.Unmarshal(created, &leaveRef); err != nil {
		t.Fatalf("decode leave id: %v", err)
	}

	// Teacher sees it in review and approves it.
	var pending []struct {
		LeaveID int64  `json:"leaveId"`
		Status  string `json:"status"`
	}
	getJSON(t, client, ts.URL+"/api/v1/leave/review", teacherToken, &pending)
	found := false
	for _, item := range pending {
		if item.LeaveID == leaveRef.LeaveID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected application %d in the review queue", leaveRef.LeaveID)
	}

	doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/api/v1/leave/%d/status", ts.URL, leaveRef.LeaveID), teacherToken, map[string]any{
		"status": "Approved",
	}, http.StatusOK)

	// An approved application can no longer be edited by the student.
	doJSON(t, client, http.MethodPut, fmt.Sprintf("%s/api/v1/leave/%d", ts.URL, leaveRef.LeaveID), studentToken, map[string]any{
		"fromDate": from, "toDate": to, "reason": "changed my mind about dates",
	}, http.StatusConflict)

	// A different reviewer resets the decision back to Pending, and the reset
	// stamps that reviewer, not the original approver.
	reviewerToken := login(t, client, ts.URL, reviewerEmail, "Review123!")
	doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/api/v1/leave/%d/status", ts.URL, leaveRef.LeaveID), reviewerToken, map[string]any{
		"status": "Pending",
	}, http.StatusOK)

	var mine []struct {
		LeaveID    int64  `json:"leaveId"`
		Status     string `json:"status"`
		ReviewedBy *int64 `json:"reviewedBy"`
	}
	getJSON(t, client, ts.URL+"/api/v1/leave/", studentToken, &mine)
	var reset bool
	for _, item := range mine {
		if item.LeaveID != leaveRef.LeaveID {
			continue
		}
		reset = true
		if item.Status != "Pending" {
			t.Fatalf("expected status Pending after reset, got %s", item.Status)
		}
		if item.ReviewedBy == nil || *item.ReviewedBy != fx.reviewerFacultyID {
			t.Fatalf("expected reviewedBy %d after reset, got %v", fx.reviewerFacultyID, item.ReviewedBy)
		}
	}
	if !reset {
		t.Fatalf("expected application %d in the student's list", leaveRef.LeaveID)
	}

	// Timetable grid shows the seeded slot today or not, but the call works.
	var week struct {
		Grid struct {
			Cells [][][]json.RawMessage `json:"cells"`
		} `json:"grid"`
	}
	getJSON(t, client, ts.URL+"/api/v1/timetable", studentToken, &week)
	if len(week.Grid.Cells) != 8 {
		t.Fatalf("expected 8 period rows, got %d", len(week.Grid.Cells))
	}

	// Fee statement reflects the seeded row.
	var statement struct {
		Summary struct {
			TotalBilled float64 `json:"totalBilled"`
			Balance     float64 `json:"balance"`
		} `json:"summary"`
	}
	getJSON(t, client, ts.URL+"/api/v1/fees", studentToken, &statement)
	if statement.Summary.TotalBilled != 50000 || statement.Summary.Balance != 30000 {
		t.Fatalf("unexpected fee summary %+v", statement.Summary)
	}

	// Report card renders as a PDF.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/reports/report-card", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("report card request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for report card, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", ct)
	}

	// A student must not reach teacher-only surfaces.
	reqForbidden, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/leave/review", nil)
	reqForbidden.Header.Set("Authorization", "Bearer "+studentToken)
	respForbidden, err := client.Do(reqForbidden)
	if err != nil {
		t.Fatalf("review request failed: %v", err)
	}
	respForbidden.Body.Close()
	if respForbidden.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for student review access, got %d", respForbidden.StatusCode)
	}
}

type fixtures struct {
	sectionID         int64
	studentID         int64
	facultyID         int64
	reviewerFacultyID int64
	courseID          int64
}

func seedFixtures(t *testing.T, ctx context.Context, pool *pgxpool.Pool, teacherEmail, reviewerEmail, studentEmail string) fixtures {
	t.Helper()

	var fx fixtures
	sectionName := fmt.Sprintf("CS-%d", time.Now().UnixNano())
	if err := pool.QueryRow(ctx,
		"INSERT INTO sections (name) VALUES ($1) RETURNING section_id", sectionName).Scan(&fx.sectionID); err != nil {
		t.Fatalf("seed section: %v", err)
	}

	teacherHash, err := auth.HashPassword("Teach123!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	var teacherUserID int64
	if err := pool.QueryRow(ctx, `
    INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'faculty') RETURNING user_id
  `, teacherEmail, teacherHash).Scan(&teacherUserID); err != nil {
		t.Fatalf("seed teacher user: %v", err)
	}
	if err := pool.QueryRow(ctx, `
    INSERT INTO faculty (user_id, name, department, designation)
    VALUES ($1, 'Prof. Journey', 'CSE', 'Assistant Professor') RETURNING faculty_id
  `, teacherUserID).Scan(&fx.facultyID); err != nil {
		t.Fatalf("seed faculty: %v", err)
	}

	reviewerHash, err := auth.HashPassword("Review123!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	var reviewerUserID int64
	if err := pool.QueryRow(ctx, `
    INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'faculty') RETURNING user_id
  `, reviewerEmail, reviewerHash).Scan(&reviewerUserID); err != nil {
		t.Fatalf("seed reviewer user: %v", err)
	}
	if err := pool.QueryRow(ctx, `
    INSERT INTO faculty (user_id, name, department, designation)
    VALUES ($1, 'Prof. Second Opinion', 'CSE', 'Professor') RETURNING faculty_id
  `, reviewerUserID).Scan(&fx.reviewerFacultyID); err != nil {
		t.Fatalf("seed reviewer faculty: %v", err)
	}

	studentHash, err := auth.HashPassword("Study123!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	var studentUserID int64
	if err := pool.QueryRow(ctx, `
    INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'student') RETURNING user_id
  `, studentEmail, studentHash).Scan(&studentUserID); err != nil {
		t.Fatalf("seed student user: %v", err)
	}
	if err := pool.QueryRow(ctx, `
    INSERT INTO students (user_id, name, section_id, current_semester, year_of_admission)
    VALUES ($1, 'Journey Student', $2, 3, 2023) RETURNING student_id
  `, studentUserID, fx.sectionID).Scan(&fx.studentID); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	if err := pool.QueryRow(ctx, `
    INSERT INTO courses (course_name, faculty_id, section_id, semester, is_lab)
    VALUES ('Data Structures', $1, $2, 3, FALSE) RETURNING course_id
  `, fx.facultyID, fx.sectionID).Scan(&fx.courseID); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO timetable (course_id, section_id, day_of_week, period, time_slot)
    VALUES ($1, $2, 'Monday', 3, '11:00-11:50')
  `, fx.courseID, fx.sectionID); err != nil {
		t.Fatalf("seed timetable: %v", err)
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO fee (student_id, semester, total_amount, paid_amount)
    VALUES ($1, 3, 50000, 20000)
  `, fx.studentID); err != nil {
		t.Fatalf("seed fee: %v", err)
	}

	return fx
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	data := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	}, http.StatusOK)

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected a token from login")
	}
	return payload.Token
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body map[string]any, wantStatus int) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, url, wantStatus, resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		t.Fatalf("decode envelope from %s: %v", url, err)
	}
	return env.Data
}

func getJSON(t *testing.T, client *http.Client, url, token string, out any) {
	t.Helper()
	data := doJSON(t, client, http.MethodGet, url, token, nil, http.StatusOK)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode %s payload: %v", url, err)
	}
}
