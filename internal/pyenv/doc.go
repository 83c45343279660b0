// Package pyenv implements the bootstrap decision procedure: locating
// the isolated environment for a payload script, probing whether the
// required imports are already serviceable, provisioning and repairing
// the environment, and handing the process off to its interpreter.
package pyenv
