package fakeapi

import "eatgo/internal/domain"

// Seed fills s with a small data set and one login
// (tester@example.com / test).
func Seed(s *Server) {
	for i, name := range []string{"서울", "대전", "대구", "부산", "광주", "강원도", "인천"} {
		s.AddRegion(domain.Region{ID: int64(i + 1), Name: name})
	}
	for i, name := range []string{"한식", "중식", "일식", "양식", "분식"} {
		s.AddCategory(domain.Category{ID: int64(i + 1), Name: name})
	}

	s.AddRestaurant("서울", domain.Restaurant{
		ID: 1, CategoryID: 1, Name: "양천주가", Address: "서울 강남구 123456",
		Reviews: []domain.Review{
			{ID: 1, RestaurantID: 1, Name: "테스터", Description: "맛있어요", Score: 1},
		},
	})
	s.AddRestaurant("서울", domain.Restaurant{ID: 2, CategoryID: 1, Name: "한국식 초밥", Address: "서울 강남구"})
	s.AddRestaurant("서울", domain.Restaurant{ID: 3, CategoryID: 3, Name: "마법사주방", Address: "서울시 강남구"})
	s.AddRestaurant("부산", domain.Restaurant{ID: 4, CategoryID: 2, Name: "밀면집", Address: "부산 해운대구"})

	s.AddUser("tester@example.com", "test", "테스터")
}
