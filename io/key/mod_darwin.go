// SPDX-License-Identifier: Unlicense OR MIT

package key

// ModShortcut is the platform conventional shortcut modifier.
const ModShortcut = ModCommand

// ModShortcutAlt is the platform conventional alternative shortcut
// modifier, used for word-wise motion and deletion.
const ModShortcutAlt = ModAlt
