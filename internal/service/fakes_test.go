package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"awqaf/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory stand-ins for the repositories. They keep just enough behaviour for the
// service rules to be exercised without a database.

type fakeTx struct{}

func (fakeTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (fakeTx) RunInSnapshot(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (fakeTx) RunInRepeatableRead(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// recordingTx notes which kind of transaction each call opened.
type recordingTx struct {
	modes []string
}

func (r *recordingTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	r.modes = append(r.modes, "read-committed")
	return fn(ctx)
}

func (r *recordingTx) RunInSnapshot(ctx context.Context, fn func(txCtx context.Context) error) error {
	r.modes = append(r.modes, "snapshot")
	return fn(ctx)
}

func (r *recordingTx) RunInRepeatableRead(ctx context.Context, fn func(txCtx context.Context) error) error {
	r.modes = append(r.modes, "repeatable-read")
	return fn(ctx)
}

type fakeLocker struct {
	calls int
}

func (l *fakeLocker) WithWaqfLock(ctx context.Context, _ int64, fn func(txCtx context.Context) error) error {
	l.calls++
	return fn(ctx)
}

type fakeWaqfRepo struct {
	waqfs   []model.Waqf
	members map[int64][]string
}

func newFakeWaqfRepo(waqfs ...model.Waqf) *fakeWaqfRepo {
	r := &fakeWaqfRepo{members: map[int64][]string{}}
	for i := range waqfs {
		waqfs[i].ID = uint(i + 1)
		r.waqfs = append(r.waqfs, waqfs[i])
	}
	return r
}

func sameLabel(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r *fakeWaqfRepo) Create(_ context.Context, waqf *model.Waqf) error {
	waqf.ID = uint(len(r.waqfs) + 1)
	waqf.CreatedAt = time.Now()
	waqf.UpdatedAt = waqf.CreatedAt
	r.waqfs = append(r.waqfs, *waqf)
	return nil
}

func (r *fakeWaqfRepo) FindByKey(_ context.Context, govID int64, assetKind string, assetLabel *string) (*model.Waqf, error) {
	for i := range r.waqfs {
		w := r.waqfs[i]
		if w.GovID == govID && w.AssetKind == assetKind && sameLabel(w.AssetLabel, assetLabel) {
			return &w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWaqfRepo) FindFirstByGovID(_ context.Context, govID int64) (*model.Waqf, error) {
	for i := range r.waqfs {
		if r.waqfs[i].GovID == govID {
			w := r.waqfs[i]
			return &w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWaqfRepo) ListByGovID(_ context.Context, govID int64) ([]model.Waqf, error) {
	var out []model.Waqf
	for _, w := range r.waqfs {
		if w.GovID == govID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWaqfRepo) ListByNationalID(_ context.Context, nationalID string) ([]model.Waqf, error) {
	var out []model.Waqf
	for _, w := range r.waqfs {
		for _, m := range r.members[w.GovID] {
			if m == nationalID {
				out = append(out, w)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeWaqfRepo) Update(_ context.Context, govID int64, assetKind string, assetLabel *string, patch model.WaqfPatch) (int64, error) {
	for i := range r.waqfs {
		w := &r.waqfs[i]
		if w.GovID != govID || w.AssetKind != assetKind || !sameLabel(w.AssetLabel, assetLabel) {
			continue
		}
		if patch.Name != nil {
			w.Name = *patch.Name
		}
		if patch.Type != nil {
			w.Type = *patch.Type
		}
		if patch.Corpus != nil {
			w.Corpus = *patch.Corpus
		}
		if patch.LastPeriodProfit != nil {
			v := *patch.LastPeriodProfit
			w.LastPeriodProfit = &v
		}
		if patch.Currency != nil {
			w.Currency = *patch.Currency
		}
		return 1, nil
	}
	return 0, nil
}

func (r *fakeWaqfRepo) Delete(_ context.Context, govID int64, assetKind string, assetLabel *string) (int64, error) {
	for i, w := range r.waqfs {
		if w.GovID == govID && w.AssetKind == assetKind && sameLabel(w.AssetLabel, assetLabel) {
			r.waqfs = append(r.waqfs[:i], r.waqfs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeWaqfRepo) AddAuthorizedUser(_ context.Context, member *model.WaqfAuthorizedUser) error {
	for _, m := range r.members[member.WaqfGovID] {
		if m == member.NationalID {
			return nil
		}
	}
	r.members[member.WaqfGovID] = append(r.members[member.WaqfGovID], member.NationalID)
	return nil
}

func (r *fakeWaqfRepo) IsAuthorized(_ context.Context, govID int64, nationalID string) (bool, error) {
	for _, m := range r.members[govID] {
		if m == nationalID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBeneficiaryRepo struct {
	rows map[uuid.UUID]*model.Beneficiary
	seq  []uuid.UUID
}

func newFakeBeneficiaryRepo() *fakeBeneficiaryRepo {
	return &fakeBeneficiaryRepo{rows: map[uuid.UUID]*model.Beneficiary{}}
}

func (r *fakeBeneficiaryRepo) add(govID int64, name string, active bool) model.Beneficiary {
	b := model.Beneficiary{ID: uuid.New(), WaqfGovID: govID, FullName: name, IsActive: active}
	r.rows[b.ID] = &b
	r.seq = append(r.seq, b.ID)
	return b
}

func (r *fakeBeneficiaryRepo) Create(_ context.Context, b *model.Beneficiary) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	cp := *b
	r.rows[b.ID] = &cp
	r.seq = append(r.seq, b.ID)
	return nil
}

func (r *fakeBeneficiaryRepo) FindByID(_ context.Context, govID int64, id uuid.UUID) (*model.Beneficiary, error) {
	b, ok := r.rows[id]
	if !ok || b.WaqfGovID != govID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBeneficiaryRepo) List(_ context.Context, govID int64, includeInactive bool) ([]model.Beneficiary, error) {
	var out []model.Beneficiary
	for _, id := range r.seq {
		b := r.rows[id]
		if b.WaqfGovID == govID && (includeInactive || b.IsActive) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBeneficiaryRepo) Update(_ context.Context, govID int64, id uuid.UUID, patch model.BeneficiaryPatch) (int64, error) {
	b, ok := r.rows[id]
	if !ok || b.WaqfGovID != govID {
		return 0, nil
	}
	if patch.FullName != nil {
		b.FullName = *patch.FullName
	}
	if patch.NationalID != nil {
		b.NationalID = patch.NationalID
	}
	if patch.Relation != nil {
		b.Relation = patch.Relation
	}
	if patch.IsActive != nil {
		b.IsActive = *patch.IsActive
	}
	if patch.IBAN != nil {
		b.IBAN = patch.IBAN
	}
	if patch.BankName != nil {
		b.BankName = patch.BankName
	}
	if patch.AccountHolderName != nil {
		b.AccountHolderName = patch.AccountHolderName
	}
	return 1, nil
}

func (r *fakeBeneficiaryRepo) CountActive(ctx context.Context, govID int64) (int64, error) {
	list, _ := r.List(ctx, govID, false)
	return int64(len(list)), nil
}

type fakeRuleRepo struct {
	rules []model.DistributionRule
}

func ruleActive(r model.DistributionRule, date time.Time) bool {
	return r.ValidTo == nil || !r.ValidTo.Before(date)
}

func (r *fakeRuleRepo) Create(_ context.Context, rule *model.DistributionRule) error {
	rule.ID = uuid.New()
	rule.CreatedAt = time.Now()
	r.rules = append(r.rules, *rule)
	return nil
}

func (r *fakeRuleRepo) FindByID(_ context.Context, govID int64, id uuid.UUID) (*model.DistributionRule, error) {
	for i := range r.rules {
		if r.rules[i].ID == id && r.rules[i].WaqfGovID == govID {
			rule := r.rules[i]
			return &rule, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRuleRepo) List(_ context.Context, govID int64) ([]model.DistributionRule, error) {
	var out []model.DistributionRule
	for _, rule := range r.rules {
		if rule.WaqfGovID == govID {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) ListActive(ctx context.Context, govID int64, date time.Time) ([]model.DistributionRule, error) {
	all, _ := r.List(ctx, govID)
	var out []model.DistributionRule
	for _, rule := range all {
		if ruleActive(rule, date) {
			out = append(out, rule)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out, nil
}

func (r *fakeRuleRepo) SumActivePercent(ctx context.Context, govID int64, date time.Time, excludeID *uuid.UUID) (decimal.Decimal, error) {
	active, _ := r.ListActive(ctx, govID, date)
	total := decimal.Zero
	for _, rule := range active {
		if rule.ShareType != model.ShareTypePercent {
			continue
		}
		if excludeID != nil && rule.ID == *excludeID {
			continue
		}
		total = total.Add(rule.ShareValue)
	}
	return total, nil
}

func (r *fakeRuleRepo) CountActive(ctx context.Context, govID int64, date time.Time) (int64, error) {
	active, _ := r.ListActive(ctx, govID, date)
	return int64(len(active)), nil
}

func (r *fakeRuleRepo) Update(_ context.Context, govID int64, id uuid.UUID, patch model.RulePatch) (int64, error) {
	for i := range r.rules {
		if r.rules[i].ID == id && r.rules[i].WaqfGovID == govID {
			r.rules[i] = patch.Apply(r.rules[i])
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeRuleRepo) Delete(_ context.Context, govID int64, id uuid.UUID) (int64, error) {
	for i := range r.rules {
		if r.rules[i].ID == id && r.rules[i].WaqfGovID == govID {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeProfitRepo struct {
	rows map[uuid.UUID]*model.Profit
}

func newFakeProfitRepo() *fakeProfitRepo {
	return &fakeProfitRepo{rows: map[uuid.UUID]*model.Profit{}}
}

func (r *fakeProfitRepo) Create(_ context.Context, p *model.Profit) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakeProfitRepo) FindByID(_ context.Context, govID int64, id uuid.UUID) (*model.Profit, error) {
	p, ok := r.rows[id]
	if !ok || p.WaqfGovID != govID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfitRepo) List(_ context.Context, govID int64, _, _ int) ([]model.Profit, int64, error) {
	var out []model.Profit
	for _, p := range r.rows {
		if p.WaqfGovID == govID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStart.After(out[j].PeriodStart) })
	return out, int64(len(out)), nil
}

func (r *fakeProfitRepo) Update(_ context.Context, govID int64, id uuid.UUID, patch model.ProfitPatch) (int64, error) {
	p, ok := r.rows[id]
	if !ok || p.WaqfGovID != govID {
		return 0, nil
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.PeriodEnd != nil {
		v := *patch.PeriodEnd
		p.PeriodEnd = &v
	}
	if patch.Notes != nil {
		p.Notes = patch.Notes
	}
	return 1, nil
}

type fakePayoutRepo struct {
	rows []model.Payout
}

func (r *fakePayoutRepo) Create(_ context.Context, p *model.Payout) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	r.rows = append(r.rows, *p)
	return nil
}

func (r *fakePayoutRepo) CreateBatch(ctx context.Context, payouts []model.Payout) error {
	for i := range payouts {
		if err := r.Create(ctx, &payouts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakePayoutRepo) FindByID(_ context.Context, govID int64, id uuid.UUID) (*model.Payout, error) {
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].WaqfGovID == govID {
			p := r.rows[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePayoutRepo) matches(p model.Payout, govID int64, f model.PayoutFilter) bool {
	if p.WaqfGovID != govID {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.From != nil && p.PayoutDate.Before(*f.From) {
		return false
	}
	if f.To != nil && p.PayoutDate.After(*f.To) {
		return false
	}
	if f.BeneficiaryID != nil && p.BeneficiaryID != *f.BeneficiaryID {
		return false
	}
	if f.ProfitID != nil && (p.ProfitID == nil || *p.ProfitID != *f.ProfitID) {
		return false
	}
	return true
}

func (r *fakePayoutRepo) List(ctx context.Context, govID int64, filter model.PayoutFilter, _, _ int) ([]model.Payout, int64, error) {
	out, _ := r.ListForReconciliation(ctx, govID, filter)
	return out, int64(len(out)), nil
}

func (r *fakePayoutRepo) ListForReconciliation(_ context.Context, govID int64, filter model.PayoutFilter) ([]model.Payout, error) {
	var out []model.Payout
	for _, p := range r.rows {
		if r.matches(p, govID, filter) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePayoutRepo) Update(_ context.Context, govID int64, id uuid.UUID, patch model.PayoutPatch) (int64, error) {
	for i := range r.rows {
		p := &r.rows[i]
		if p.ID != id || p.WaqfGovID != govID {
			continue
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.PayoutDate != nil {
			p.PayoutDate = *patch.PayoutDate
		}
		if patch.PayoutMethod != nil {
			p.PayoutMethod = *patch.PayoutMethod
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.ReferenceNumber != nil {
			p.ReferenceNumber = patch.ReferenceNumber
		}
		if patch.Notes != nil {
			p.Notes = patch.Notes
		}
		if patch.CompletedAt != nil {
			v := *patch.CompletedAt
			p.CompletedAt = &v
		}
		return 1, nil
	}
	return 0, nil
}

type fakeDashboardRepo struct {
	payouts *fakePayoutRepo
	profits *fakeProfitRepo
}

func (r *fakeDashboardRepo) SumCompletedPayouts(_ context.Context, govID int64, start, end *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.payouts.rows {
		if p.WaqfGovID != govID || p.Status != model.PayoutCompleted {
			continue
		}
		if start != nil && p.PayoutDate.Before(*start) {
			continue
		}
		if end != nil && p.PayoutDate.After(*end) {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total, nil
}

func (r *fakeDashboardRepo) SumProfits(_ context.Context, govID int64, status string, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.profits.rows {
		if p.WaqfGovID != govID || p.PeriodStart.Before(start) || p.PeriodStart.After(end) {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total, nil
}

func (r *fakeDashboardRepo) GetBeneficiaryTotals(_ context.Context, govID int64, limit int) ([]model.BeneficiaryPayoutTotal, error) {
	byID := map[uuid.UUID]*model.BeneficiaryPayoutTotal{}
	var order []uuid.UUID
	for _, p := range r.payouts.rows {
		if p.WaqfGovID != govID || p.Status != model.PayoutCompleted {
			continue
		}
		t, ok := byID[p.BeneficiaryID]
		if !ok {
			t = &model.BeneficiaryPayoutTotal{BeneficiaryID: p.BeneficiaryID.String()}
			byID[p.BeneficiaryID] = t
			order = append(order, p.BeneficiaryID)
		}
		t.PayoutCount++
		t.TotalAmount = t.TotalAmount.Add(p.Amount)
	}
	out := make([]model.BeneficiaryPayoutTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmount.GreaterThan(out[j].TotalAmount) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeAuditRepo struct {
	entries []model.AuditLog
}

func (r *fakeAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	entry.ID = uuid.New()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, govIDs []int64, _, _ int) ([]model.AuditLog, int64, error) {
	var out []model.AuditLog
	for _, e := range r.entries {
		for _, id := range govIDs {
			if e.WaqfGovID != nil && *e.WaqfGovID == id {
				out = append(out, e)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeAuditRepo) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeUserRepo struct {
	users  map[uuid.UUID]*model.User
	tokens map[string]*model.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}, tokens: map[string]*model.RefreshToken{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	u, ok := r.users[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByNationalID(_ context.Context, nationalID string) (*model.User, error) {
	for _, u := range r.users {
		if u.NationalID == nationalID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) SaveRefreshToken(_ context.Context, token *model.RefreshToken) error {
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeUserRepo) GetRefreshToken(_ context.Context, token string) (*model.RefreshToken, error) {
	rt, ok := r.tokens[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rt
	cp.User = *r.users[rt.UserID]
	return &cp, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteExpiredRefreshTokens(_ context.Context, before time.Time) error {
	for k, rt := range r.tokens {
		if rt.ExpiresAt.Before(before) {
			delete(r.tokens, k)
		}
	}
	return nil
}

type publishedEvent struct {
	govID int64
	event string
	data  interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(govID int64, event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{govID: govID, event: event, data: data})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(s string) func() time.Time {
	t := day(s).Add(10 * time.Hour)
	return func() time.Time { return t }
}
