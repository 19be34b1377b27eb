// SPDX-License-Identifier: Unlicense OR MIT

//go:build !darwin
// +build !darwin

package key

// ModShortcut is the platform conventional shortcut modifier.
const ModShortcut = ModCtrl

// ModShortcutAlt is the platform conventional alternative shortcut
// modifier, used for word-wise motion and deletion.
const ModShortcutAlt = ModCtrl
