package pyenv

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mesh-intelligence/pylaunch/pkg/types"
)

// Collaborator interfaces for the orchestrator. The concrete types in
// this package implement them; tests substitute counters.
type (
	// Prober answers the fast-path question against the environment
	// this process already runs in.
	Prober interface {
		SatisfiesAll(names []string) bool
	}

	// EnvProvisioner creates the isolated environment when absent.
	EnvProvisioner interface {
		Ensure(desc Descriptor) error
	}

	// IntegrityVerifier checks the isolated interpreter against the
	// required import set.
	IntegrityVerifier interface {
		Satisfied(pythonPath string) bool
	}

	// DependencyInstaller installs the declared dependency set into the
	// isolated environment.
	DependencyInstaller interface {
		Install(root, pipPath string) error
	}

	// Recorder persists bootstrap events. Append errors never block a
	// launch.
	Recorder interface {
		Record(kind, detail string) error
	}
)

// Outcome is the terminal state of a bootstrap pass that returned to
// its caller.
type Outcome int

const (
	// OutcomeNone: the pass failed before reaching a terminal state;
	// the accompanying error says why.
	OutcomeNone Outcome = iota

	// OutcomeSatisfied: the current environment already serves the
	// required imports; nothing was touched.
	OutcomeSatisfied

	// OutcomeRepaired: this process was relaunched by a prior handoff
	// and the environment was repaired in place. The caller proceeds
	// with whatever the install achieved; there is no re-check and no
	// second handoff.
	OutcomeRepaired

	// OutcomeHandedOff: the handoff strategy returned control, which
	// only the spawn-and-wait variant does (and it exits the process
	// itself). Mostly observed by tests using a fake strategy.
	OutcomeHandedOff
)

// Bootstrapper composes the leaf operations into the bootstrap decision
// procedure. Each pass terminates in at most one install and at most
// one handoff; the re-entrancy marker is the loop-breaker.
type Bootstrapper struct {
	Config types.Config

	Prober      Prober
	Provisioner EnvProvisioner
	Verifier    IntegrityVerifier
	Installer   DependencyInstaller
	Strategy    Strategy
	Recorder    Recorder

	Out io.Writer

	// goos selects the environment layout; defaults to runtime.GOOS.
	goos string
}

// NewBootstrapper wires a Bootstrapper with the real collaborators for
// the given invocation. rec may be nil.
func NewBootstrapper(cfg types.Config, ictx InvocationContext, rec Recorder, out, errOut io.Writer) *Bootstrapper {
	return &Bootstrapper{
		Config:      cfg,
		Prober:      NewResolver(ictx, runtime.GOOS),
		Provisioner: &Provisioner{Out: out},
		Verifier:    &Verifier{Imports: cfg.RequiredImports},
		Installer: &Installer{
			IndexURL:         cfg.IndexURL,
			RequirementsFile: cfg.RequirementsFile,
			Packages:         cfg.RequiredPackages,
			Out:              out,
			Err:              errOut,
		},
		Strategy: PlatformStrategy(),
		Recorder: rec,
		Out:      out,
	}
}

// Bootstrap runs the decision procedure for one invocation.
//
// Fast path satisfied: returns OutcomeSatisfied having written nothing
// and spawned nothing. Marker set but unsatisfied: the environment is
// treated as corrupt and repaired in place with a single unconditional
// install, then OutcomeRepaired. Otherwise: provision, verify, install
// only when verification failed, then hand off. On the replace variant
// a successful handoff never returns.
func (b *Bootstrapper) Bootstrap(ictx InvocationContext) (Outcome, error) {
	if b.Prober.SatisfiesAll(b.Config.RequiredImports) {
		return OutcomeSatisfied, nil
	}

	desc := b.Locate(ictx.Root)

	if ictx.Relaunched {
		fmt.Fprintln(b.out(), "[bootstrap] inside environment but dependencies missing, repairing...")
		b.record("repair", desc.Dir)
		if err := b.Installer.Install(ictx.Root, desc.Pip); err != nil {
			return OutcomeNone, err
		}
		return OutcomeRepaired, nil
	}

	if err := b.Ensure(ictx); err != nil {
		return OutcomeNone, err
	}

	b.record("handoff", b.Strategy.Name())
	environ := MarkerEnviron(os.Environ())
	if err := b.Strategy.Launch(desc.Python, ictx.Argv(), environ); err != nil {
		return OutcomeNone, err
	}
	return OutcomeHandedOff, nil
}

// Ensure brings the isolated environment to a dependency-satisfied
// state without handing off: provision when absent, verify, install
// only when verification failed. This is the middle of the handoff path
// and the whole of the `ensure` command.
func (b *Bootstrapper) Ensure(ictx InvocationContext) error {
	desc := b.Locate(ictx.Root)

	if err := b.Provisioner.Ensure(desc); err != nil {
		return err
	}
	b.record("provision", desc.Dir)

	if b.Verifier.Satisfied(desc.Python) {
		b.record("verify", "satisfied")
		return nil
	}
	b.record("verify", "unsatisfied")
	b.record("install", desc.Pip)
	return b.Installer.Install(ictx.Root, desc.Pip)
}

// ForceInstall runs the installer against the environment regardless of
// its verification state.
func (b *Bootstrapper) ForceInstall(ictx InvocationContext) error {
	desc := b.Locate(ictx.Root)
	b.record("install", desc.Pip)
	return b.Installer.Install(ictx.Root, desc.Pip)
}

// Locate derives the environment Descriptor for a script root using
// this launcher's configuration.
func (b *Bootstrapper) Locate(root string) Descriptor {
	goos := b.goos
	if goos == "" {
		goos = runtime.GOOS
	}
	return Locate(root, b.Config.VenvDirName, goos)
}

func (b *Bootstrapper) record(kind, detail string) {
	if b.Recorder == nil {
		return
	}
	// The journal is advisory; a failed append must not abort a
	// bootstrap that is otherwise proceeding.
	_ = b.Recorder.Record(kind, detail)
}

func (b *Bootstrapper) out() io.Writer {
	if b.Out != nil {
		return b.Out
	}
	return os.Stdout
}
