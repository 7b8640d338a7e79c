package block

// UpdateConnectorLocations writes the block's workspace position back to the
// model (unless it is top-level) and reports each connector's workspace
// anchor to the tracker. Stacks attached to connected inputs are refreshed
// too, using an explicit work stack rather than recursion.
//
// Use it after a block moved without changing shape.
func (v *View) UpdateConnectorLocations() {
	work := []*View{v}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		cur.updateBlockPosition()
		t := cur.cfg.tracker
		if t == nil {
			continue
		}

		if c := cur.block.PreviousConnection(); c != nil {
			t.MoveConnectorTo(c, cur.ToWorkspace(cur.anchors.Previous))
		}
		if c := cur.block.NextConnection(); c != nil {
			t.MoveConnectorTo(c, cur.ToWorkspace(cur.anchors.Next))
		}
		if c := cur.block.OutputConnection(); c != nil {
			t.MoveConnectorTo(c, cur.ToWorkspace(cur.anchors.Output))
		}
		for i, iv := range cur.inputs {
			c := iv.Input().Connection()
			if c == nil {
				continue
			}
			t.MoveConnectorTo(c, cur.ToWorkspace(cur.anchors.Inputs[i]))
			if child := cur.children[i]; c.IsConnected() && child != nil {
				for j := len(child.views) - 1; j >= 0; j-- {
					work = append(work, child.views[j])
				}
			}
		}
	}
}

// updateBlockPosition stores the view's workspace position on the block.
// Top-level blocks keep their model position.
func (v *View) updateBlockPosition() {
	if v.block.IsTopLevel() {
		return
	}
	v.block.SetPosition(v.WorkspacePosition())
}
