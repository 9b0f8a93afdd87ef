// Package commands maps key bindings to editor commands.
//
// A Table holds named commands, each with the key bindings that trigger
// it. Default builds the standard table:
//
//	Ctrl-X  Cut          Ctrl-Z  Undo        Ctrl-S  Save
//	Ctrl-C  Copy         Ctrl-Y  Redo        Ctrl-O  Open
//	Ctrl-V  Paste        Ctrl-A  SelectAll   Ctrl-N  NewBuffer
//	Home    Home         End     End         F6      NextView
//	Return  Enter        Tab     Tab         F7      SplitView
//	Backspace, Delete    Arrows, PageUp      Ctrl-W  CloseView
//	                     PageDown            Ctrl-Q  Quit
//
// Holding Shift with a motion key extends the selection.
//
// Dispatch runs the command bound to a key press, or types the character
// when no command is bound:
//
//	table, err := commands.Default(settings)
//	ctx := &commands.Context{Workspace: ws, Clipboard: clipboard.Default()}
//	handled, err := table.Dispatch(ctx, key.MustParse("Ctrl-S"))
package commands
