package tenant

import "testing"

func TestCanAccess_PlanMatrix(t *testing.T) {
	cases := []struct {
		plan    Plan
		feature Feature
		ok      bool
	}{
		{PlanFree, FeatureEstoque, false},
		{PlanFree, FeatureMovimentacoes, false},
		{PlanFree, FeatureInvites, false},
		{PlanPlus, FeatureEstoque, true},
		{PlanPlus, FeatureMovimentacoes, true},
		{PlanPlus, FeatureInvites, false},
		{PlanPro, FeatureEstoque, true},
		{PlanPro, FeatureMovimentacoes, true},
		{PlanPro, FeatureInvites, true},
	}

	for _, tc := range cases {
		if got := CanAccess(tc.plan, tc.feature); got != tc.ok {
			t.Fatalf("%s/%s: expected %v, got %v", tc.plan, tc.feature, tc.ok, got)
		}
	}
}

func TestCanAccess_UnknownPlanBehavesAsFree(t *testing.T) {
	if CanAccess(Plan("enterprise"), FeatureEstoque) {
		t.Fatal("unknown plan must not unlock features")
	}
}

func TestCanManageCompany(t *testing.T) {
	for role, ok := range map[string]bool{
		RoleOwner:  true,
		RoleAdmin:  true,
		RoleMember: false,
		"":         false,
	} {
		c := Context{Role: role}
		if got := c.CanManageCompany(); got != ok {
			t.Fatalf("role %q: expected %v, got %v", role, ok, got)
		}
	}
}
