package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/drip-network/drip/testutil/keeper"
	"github.com/drip-network/drip/x/bonding/types"
	escrowtypes "github.com/drip-network/drip/x/escrow/types"
)

// setupDisputedSession funds a session, bonds and assigns the worker, and
// returns the session id hex plus the parties.
func setupDisputedSession(t *testing.T, f *keepertest.Fixture) (sessionID string, worker, reporter sdk.AccAddress) {
	client := keepertest.Addr("client")
	worker = keepertest.Addr("worker")
	reporter = keepertest.Addr("reporter")
	f.FundAccount(t, client, math.NewInt(1000))
	f.FundAccount(t, worker, math.NewInt(2_000_000))
	f.FundAccount(t, reporter, math.NewInt(500_000))

	require.NoError(t, f.Bonding.BondStake(f.Ctx, worker.String(), math.NewInt(2_000_000)))

	var id escrowtypes.SessionID
	id[0] = 0xA5
	require.NoError(t, f.Escrow.FundSession(f.Ctx, client.String(), id, math.NewInt(300)))
	require.NoError(t, f.Escrow.AssignMiner(f.Ctx, f.Authority, id, worker.String()))
	return id.String(), worker, reporter
}

func disputeDeposit(f *keepertest.Fixture) math.Int {
	return f.Bonding.GetParams(f.Ctx).DisputeDeposit
}

func disputeWindow(f *keepertest.Fixture) time.Duration {
	return time.Duration(f.Bonding.GetParams(f.Ctx).DisputeWindowSeconds) * time.Second
}

// TestReportFraud_Valid tests opening a dispute
func TestReportFraud_Valid(t *testing.T) {
	f := keepertest.NewFixture(t)
	sessionID, worker, reporter := setupDisputedSession(t, f)

	id, err := f.Bonding.ReportFraud(f.Ctx, reporter.String(), sessionID, []byte("evidence"), disputeDeposit(f))
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	dispute, found := f.Bonding.GetDispute(f.Ctx, id)
	require.True(t, found)
	require.Equal(t, worker.String(), dispute.Worker)
	require.Equal(t, reporter.String(), dispute.Reporter)
	require.Equal(t, types.DisputeStatusOpen, dispute.Status)
	require.True(t, dispute.Open())

	// Counter advanced
	require.Equal(t, uint64(2), f.Bonding.GetNextDisputeID(f.Ctx))
}

// TestReportFraud_DepositBelowMinimum tests the deposit floor
func TestReportFraud_DepositBelowMinimum(t *testing.T) {
	f := keepertest.NewFixture(t)
	sessionID, _, reporter := setupDisputedSession(t, f)

	low := disputeDeposit(f).Sub(math.OneInt())
	_, err := f.Bonding.ReportFraud(f.Ctx, reporter.String(), sessionID, []byte("evidence"), low)
	require.ErrorIs(t, err, types.ErrInsufficientDeposit)
}

// TestReportFraud_UnassignedSession tests disputing a session with no worker
func TestReportFraud_UnassignedSession(t *testing.T) {
	f := keepertest.NewFixture(t)
	_, _, reporter := setupDisputedSession(t, f)
	f.FundAccount(t, reporter, disputeDeposit(f))

	var other escrowtypes.SessionID
	other[0] = 0xB7
	_, err := f.Bonding.ReportFraud(f.Ctx, reporter.String(), other.String(), []byte("evidence"), disputeDeposit(f))
	require.ErrorIs(t, err, types.ErrUnknownSession)
}

// TestResolveFraud_UncontestedSlash tests the silence-concedes path: the
// window passes with no rebuttal, anyone resolves, the worker is slashed and
// the reporter's deposit comes back.
func TestResolveFraud_UncontestedSlash(t *testing.T) {
	f := keepertest.NewFixture(t)
	sessionID, worker, reporter := setupDisputedSession(t, f)
	deposit := disputeDeposit(f)

	id, err := f.Bonding.ReportFraud(f.Ctx, reporter.String(), sessionID, []byte("evidence"), deposit)
	require.NoError(t, err)
	reporterAfterDeposit := f.Balance(reporter)

	// Window still open
	err = f.Bonding.ResolveFraud(f.Ctx, reporter.String(), id, false)
	require.ErrorIs(t, err, types.ErrDisputeWindowOpen)

	f.AdvanceTime(disputeWindow(f) + time.Second)

	stakedBefore := mustBond(t, f, worker.String()).Staked
	require.NoError(t, f.Bonding.ResolveFraud(f.Ctx, reporter.String(), id, false))

	dispute, _ := f.Bonding.GetDispute(f.Ctx, id)
	require.Equal(t, types.DisputeStatusResolvedSlashed, dispute.Status)

	// Half the staked bond burned at the default 5000 bps
	slashBps := int64(f.Bonding.GetParams(f.Ctx).FraudSlashBps)
	expected := stakedBefore.MulRaw(slashBps).QuoRaw(10000)
	require.Equal(t, stakedBefore.Sub(expected), mustBond(t, f, worker.String()).Staked)

	// Deposit refunded
	require.Equal(t, reporterAfterDeposit.Add(deposit), f.Balance(reporter))

	// Resolution is single-fire
	err = f.Bonding.ResolveFraud(f.Ctx, reporter.String(), id, false)
	require.ErrorIs(t, err, types.ErrDisputeResolved)
}

// TestRebutFraud_Flow tests rebuttal gating and the contested governance path
func TestRebutFraud_Flow(t *testing.T) {
	f := keepertest.NewFixture(t)
	sessionID, worker, reporter := setupDisputedSession(t, f)
	deposit := disputeDeposit(f)

	id, err := f.Bonding.ReportFraud(f.Ctx, reporter.String(), sessionID, []byte("evidence"), deposit)
	require.NoError(t, err)

	// Only the disputed worker may rebut
	err = f.Bonding.RebutFraud(f.Ctx, reporter.String(), id)
	require.ErrorIs(t, err, types.ErrNotDisputedWorker)

	require.NoError(t, f.Bonding.RebutFraud(f.Ctx, worker.String(), id))
	dispute, _ := f.Bonding.GetDispute(f.Ctx, id)
	require.Equal(t, types.DisputeStatusContested, dispute.Status)

	f.AdvanceTime(disputeWindow(f) + time.Second)

	// Contested disputes need governance
	err = f.Bonding.ResolveFraud(f.Ctx, reporter.String(), id, true)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// Governance dismisses: worker keeps the stake and the deposit forfeits
	workerBefore := f.Balance(worker)
	stakedBefore := mustBond(t, f, worker.String()).Staked
	require.NoError(t, f.Bonding.ResolveFraud(f.Ctx, f.Authority, id, false))

	dispute, _ = f.Bonding.GetDispute(f.Ctx, id)
	require.Equal(t, types.DisputeStatusResolvedDismissed, dispute.Status)
	require.Equal(t, stakedBefore, mustBond(t, f, worker.String()).Staked)
	require.Equal(t, workerBefore.Add(deposit), f.Balance(worker))
}

// TestRebutFraud_WindowClosed tests that a late rebuttal is rejected
func TestRebutFraud_WindowClosed(t *testing.T) {
	f := keepertest.NewFixture(t)
	sessionID, worker, reporter := setupDisputedSession(t, f)

	id, err := f.Bonding.ReportFraud(f.Ctx, reporter.String(), sessionID, []byte("evidence"), disputeDeposit(f))
	require.NoError(t, err)

	f.AdvanceTime(disputeWindow(f) + time.Second)

	err = f.Bonding.RebutFraud(f.Ctx, worker.String(), id)
	require.ErrorIs(t, err, types.ErrDisputeWindowClosed)
}

// TestResolveFraud_ContestedUpheld tests governance upholding a contested claim
func TestResolveFraud_ContestedUpheld(t *testing.T) {
	f := keepertest.NewFixture(t)
	sessionID, worker, reporter := setupDisputedSession(t, f)
	deposit := disputeDeposit(f)

	id, err := f.Bonding.ReportFraud(f.Ctx, reporter.String(), sessionID, []byte("evidence"), deposit)
	require.NoError(t, err)
	require.NoError(t, f.Bonding.RebutFraud(f.Ctx, worker.String(), id))

	f.AdvanceTime(disputeWindow(f) + time.Second)

	stakedBefore := mustBond(t, f, worker.String()).Staked
	reporterBefore := f.Balance(reporter)
	require.NoError(t, f.Bonding.ResolveFraud(f.Ctx, f.Authority, id, true))

	dispute, _ := f.Bonding.GetDispute(f.Ctx, id)
	require.Equal(t, types.DisputeStatusResolvedSlashed, dispute.Status)
	require.True(t, mustBond(t, f, worker.String()).Staked.LT(stakedBefore))
	require.Equal(t, reporterBefore.Add(deposit), f.Balance(reporter))
}
