package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"mddrc-backend/internal/logsvc"
	"mddrc-backend/internal/mailsvc"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

type Options struct {
	Clock         utils.Clock
	JWTSecret     string
	JWTTTL        time.Duration
	ResetTokenTTL time.Duration
	PasswordCost  int

	DefaultParticipantPassword string
	TempEmailDomain            string
	FrontendURL                string
	StaticDir                  string

	Mailer mailsvc.Mailer
	Log    logsvc.Logger
}

func (o Options) withDefaults() Options {
	if o.JWTTTL == 0 {
		o.JWTTTL = 7 * 24 * time.Hour
	}
	if o.ResetTokenTTL == 0 {
		o.ResetTokenTTL = time.Hour
	}
	if o.PasswordCost == 0 {
		o.PasswordCost = bcrypt.DefaultCost
	}
	if o.DefaultParticipantPassword == "" {
		o.DefaultParticipantPassword = "mddrc1"
	}
	if o.TempEmailDomain == "" {
		o.TempEmailDomain = "temp.mddrc.local"
	}
	if o.StaticDir == "" {
		o.StaticDir = "./static"
	}
	if o.Log == nil {
		o.Log = logsvc.NewStdLogger(logsvc.NewStd("API : "), false)
	}
	if o.Mailer == nil {
		o.Mailer = mailsvc.NewConsole("noreply@localhost", "MDDRC", o.Log)
	}
	return o
}

// Services bundles every domain service over one set of stores.
type Services struct {
	Auth         *AuthService
	Users        *UserService
	People       *PeopleService
	Catalog      *CatalogService
	Sessions     *SessionService
	Access       *AccessService
	Tests        *TestService
	Attendance   *AttendanceService
	Certificates *CertificateService
	Feedback     *FeedbackService
	Checklists   *ChecklistService
	Reports      *ReportService
	Settings     *SettingsService
	Audit        *AuditService
	Data         *DataService
	Files        Files
}

func New(st *store.Stores, opts Options) *Services {
	opts = opts.withDefaults()
	files := Files{Root: opts.StaticDir}
	names := &names{st: st}
	people := NewPeopleService(st, opts)
	access := NewAccessService(st, opts.Clock)
	audit := NewAuditService(st, opts.Clock)

	return &Services{
		Auth:         NewAuthService(st, people, opts),
		Users:        NewUserService(st),
		People:       people,
		Catalog:      NewCatalogService(st, opts.Clock),
		Sessions:     NewSessionService(st, people, access, names, opts.Clock),
		Access:       access,
		Tests:        NewTestService(st, access, opts.Clock),
		Attendance:   NewAttendanceService(st, names, opts.Clock),
		Certificates: NewCertificateService(st, access, names, files, opts.Clock),
		Feedback:     NewFeedbackService(st, access, names, opts.Clock),
		Checklists:   NewChecklistService(st, files, opts.Clock),
		Reports:      NewReportService(st, names, files, opts.Clock),
		Settings:     NewSettingsService(st, opts.Clock),
		Audit:        audit,
		Data:         NewDataService(st, names, audit),
		Files:        files,
	}
}
