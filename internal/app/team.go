package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"bilantra/internal/core"
	"bilantra/internal/store"
)

func findMember(team []core.TeamMember, email string) int {
	email = store.NormalizeEmail(email)
	return slices.IndexFunc(team, func(m core.TeamMember) bool { return m.Email == email })
}

// authorize checks that actor belongs to the team and holds manage_users.
func authorize(sess *store.Session, actor string) error {
	i := findMember(sess.Team, actor)
	if i < 0 || sess.Team[i].Status != core.MemberActive {
		return fmt.Errorf("%s is not an active team member: %w", actor, core.ErrForbidden)
	}
	if !sess.Team[i].Role.Can(core.PermManageUsers) {
		return fmt.Errorf("role %s cannot manage users: %w", sess.Team[i].Role, core.ErrForbidden)
	}
	return nil
}

func (s *appService) ListTeam(ctx context.Context, email string) ([]core.TeamMember, error) {
	var out []core.TeamMember
	err := s.read(ctx, email, func(sess *store.Session) error {
		out = slices.Clone(sess.Team)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *appService) AddTeamMember(ctx context.Context, email, actor string, req TeamMemberRequest) (*core.TeamMember, error) {
	req.Email = store.NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := core.ValidateStruct(req); err != nil {
		return nil, err
	}
	role, err := core.ParseRole(strings.ToLower(req.Role))
	if err != nil {
		return nil, err
	}
	if role == core.RoleOwner {
		return nil, fmt.Errorf("%w: a workspace has exactly one owner", core.ErrInvalidInput)
	}

	var out core.TeamMember
	err = s.update(ctx, email, func(sess *store.Session) error {
		if err := authorize(sess, actor); err != nil {
			return err
		}
		if findMember(sess.Team, req.Email) >= 0 {
			return fmt.Errorf("team member %s: %w", req.Email, core.ErrAccountExists)
		}
		out = core.TeamMember{
			Name:     req.Name,
			Email:    req.Email,
			Role:     role,
			Status:   core.MemberActive,
			JoinedAt: s.now(),
		}
		sess.Team = append(sess.Team, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) ChangeRole(ctx context.Context, email, actor, member string, role core.Role) (*core.TeamMember, error) {
	if _, err := core.ParseRole(string(role)); err != nil {
		return nil, err
	}
	if role == core.RoleOwner {
		return nil, fmt.Errorf("%w: ownership cannot be transferred", core.ErrInvalidInput)
	}

	var out core.TeamMember
	err := s.update(ctx, email, func(sess *store.Session) error {
		if err := authorize(sess, actor); err != nil {
			return err
		}
		i := findMember(sess.Team, member)
		if i < 0 {
			return fmt.Errorf("team member %s: %w", member, core.ErrNotFound)
		}
		if sess.Team[i].Role == core.RoleOwner {
			return fmt.Errorf("the owner's role cannot change: %w", core.ErrForbidden)
		}
		sess.Team[i].Role = role
		out = sess.Team[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *appService) RemoveTeamMember(ctx context.Context, email, actor, member string) error {
	return s.update(ctx, email, func(sess *store.Session) error {
		if err := authorize(sess, actor); err != nil {
			return err
		}
		i := findMember(sess.Team, member)
		if i < 0 {
			return fmt.Errorf("team member %s: %w", member, core.ErrNotFound)
		}
		if sess.Team[i].Role == core.RoleOwner {
			return fmt.Errorf("the owner cannot be removed: %w", core.ErrForbidden)
		}
		sess.Team = slices.Delete(sess.Team, i, i+1)
		return nil
	})
}
